package dto

import "github.com/shopspring/decimal"

// CreateDebtRequest is the payload for recording a new debt.
type CreateDebtRequest struct {
	Date        string          `json:"date" binding:"required,isodate"`
	LenderName  string          `json:"lender_name" binding:"required"`
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"total_amount" binding:"required"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	DueDate     string          `json:"due_date" binding:"omitempty,isodate"`
	Note        string          `json:"note"`
}

// UpdateDebtRequest is the payload for updating a debt. Nil fields are
// left unchanged.
type UpdateDebtRequest struct {
	Date        *string          `json:"date" binding:"omitempty,isodate"`
	LenderName  *string          `json:"lender_name"`
	Category    *string          `json:"category"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	PaidAmount  *decimal.Decimal `json:"paid_amount"`
	DueDate     *string          `json:"due_date" binding:"omitempty,isodate"`
	Note        *string          `json:"note"`
}

// CreateDebtPaymentRequest is the payload for recording an installment
// against a debt.
type CreateDebtPaymentRequest struct {
	Date   string          `json:"date" binding:"required,isodate"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method"`
	Note   string          `json:"note"`
}

// SnoozeReminderRequest is the payload for snoozing a reminder.
type SnoozeReminderRequest struct {
	SnoozedUntil string `json:"snoozed_until" binding:"required,isodate"`
}
