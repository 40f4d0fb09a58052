package domain

import "github.com/shopspring/decimal"

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// CategoryFallback is used when an expense transaction carries no category.
const CategoryFallback = "Lainnya"

// Transaction represents a single cash event in the ledger. It may
// optionally reference a project; project-scoped income counts towards that
// project's payments, project-scoped expense towards its costs.
type Transaction struct {
	TransactionID string          `json:"transaction_id"` // Primary Key (UUID)
	UserID        string          `json:"user_id"`        // FK -> User.userID (Not Null)
	Date          string          `json:"date"`           // ISO calendar date (YYYY-MM-DD)
	Type          TransactionType `json:"type"`           // income or expense
	Category      string          `json:"category"`       // Free-form, e.g. "DP", "Crew", "Transport"
	ProjectID     string          `json:"project_id"`     // FK -> Project.projectID, empty when unlinked
	PaymentMethod string          `json:"payment_method"` // e.g. "Transfer", "Cash"
	Amount        decimal.Decimal `json:"amount"`         // Non-negative
	Note          string          `json:"note"`
	AuditFields
}

// IsIncome reports whether the transaction adds to the balance.
func (t Transaction) IsIncome() bool {
	return t.Type == Income
}

// IsExpense reports whether the transaction reduces the balance.
func (t Transaction) IsExpense() bool {
	return t.Type == Expense
}
