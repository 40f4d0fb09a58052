package models

import "github.com/shopspring/decimal"

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is the persistence shape of a ledger transaction. ProjectID
// is a nullable reference; a dangling value is tolerated (the cash event
// stays real even when its project is deleted).
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	Date          string          `json:"date"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	ProjectID     *string         `json:"projectID"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note"`
	AuditFields
}
