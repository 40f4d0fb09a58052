package dto

import "github.com/shopspring/decimal"

// CreateTransactionRequest is the payload for recording a cash event.
type CreateTransactionRequest struct {
	Date          string          `json:"date" binding:"required,isodate"`
	Type          string          `json:"type" binding:"required,oneof=income expense"`
	Category      string          `json:"category"`
	ProjectID     string          `json:"project_id"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Note          string          `json:"note"`
}

// UpdateTransactionRequest is the payload for updating a transaction. Nil
// fields are left unchanged.
type UpdateTransactionRequest struct {
	Date          *string          `json:"date" binding:"omitempty,isodate"`
	Type          *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Category      *string          `json:"category"`
	ProjectID     *string          `json:"project_id"`
	PaymentMethod *string          `json:"payment_method"`
	Amount        *decimal.Decimal `json:"amount"`
	Note          *string          `json:"note"`
}
