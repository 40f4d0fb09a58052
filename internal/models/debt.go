package models

import "github.com/shopspring/decimal"

// Debt is the persistence shape of a debt. Remaining amount and status are
// derived at read time, never stored.
type Debt struct {
	DebtID      string          `json:"debtID"`
	UserID      string          `json:"userID"`
	Date        string          `json:"date"`
	LenderName  string          `json:"lenderName"`
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	DueDate     *string         `json:"dueDate"`
	Note        string          `json:"note"`
	AuditFields
}

// DebtPayment is one row of a debt's ordered payment history.
type DebtPayment struct {
	DebtPaymentID string          `json:"debtPaymentID"`
	DebtID        string          `json:"debtID"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Note          string          `json:"note"`
	SortOrder     int             `json:"sortOrder"`
}
