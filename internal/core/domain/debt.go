package domain

import "github.com/shopspring/decimal"

// DebtStatus describes where a debt stands against its due date.
type DebtStatus string

const (
	DebtStatusPaid    DebtStatus = "Lunas"
	DebtStatusOverdue DebtStatus = "Overdue"
	DebtStatusActive  DebtStatus = "Aktif"
)

// DebtPayment is one installment recorded against a debt.
type DebtPayment struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Note   string          `json:"note"`
}

// Debt represents money the business owes to a lender.
type Debt struct {
	DebtID      string          `json:"debt_id"` // Primary Key (UUID)
	UserID      string          `json:"user_id"` // FK -> User.userID (Not Null)
	Date        string          `json:"date"`    // ISO date the debt was taken on
	LenderName  string          `json:"lender_name"`
	Category    string          `json:"category"` // e.g. "Operasional Bisnis", "Modal Project"
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	DueDate     string          `json:"due_date"` // ISO date, empty when open-ended
	Note        string          `json:"note"`
	Payments    []DebtPayment   `json:"payments"`
	AuditFields
}

// DerivedDebt is a Debt plus its derived remaining amount and status.
type DerivedDebt struct {
	Debt
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Status          DebtStatus      `json:"status"`
}
