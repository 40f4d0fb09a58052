package domain

import "github.com/shopspring/decimal"

// PaymentStatus describes how far a project's contract has been paid off.
type PaymentStatus string

const (
	PaymentStatusUnpaid      PaymentStatus = "Belum Bayar"
	PaymentStatusDownPayment PaymentStatus = "DP"
	PaymentStatusPaid        PaymentStatus = "Lunas"
)

// Project represents a client engagement with an agreed contract value.
// A project's financial state is never stored; it is derived at read time
// from the transactions referencing it.
type Project struct {
	ProjectID       string          `json:"project_id"` // Primary Key (UUID)
	UserID          string          `json:"user_id"`    // FK -> User.userID (Not Null)
	ClientName      string          `json:"client_name"`
	ProjectName     string          `json:"project_name"`
	ProjectType     string          `json:"project_type"`
	ProjectDate     string          `json:"project_date"` // Event date, ISO (may be empty/invalid)
	Location        string          `json:"location"`
	ContractValue   decimal.Decimal `json:"contract_value"`   // Non-negative
	PaymentDeadline string          `json:"payment_deadline"` // ISO date (may be empty)
	Phone           string          `json:"phone"`
	AuditFields
}

// ProjectPayment is one income transaction attributed to a project,
// projected into the shape the payment history views consume.
type ProjectPayment struct {
	Date   string          `json:"date"`
	Type   string          `json:"type"` // "DP" or "Pelunasan"
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Note   string          `json:"note"`
}

// ProjectExpense is one expense transaction attributed to a project.
type ProjectExpense struct {
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
}

// EnrichedProject is a Project plus its derived financial state. The
// derived fields are recomputed on every read and are never the source of
// truth; any persisted copy is a cache.
type EnrichedProject struct {
	Project
	Payments         []ProjectPayment `json:"payments"`
	Expenses         []ProjectExpense `json:"expenses"`
	TotalPaid        decimal.Decimal  `json:"total_paid"`
	TotalExpense     decimal.Decimal  `json:"total_expense"`
	RemainingPayment decimal.Decimal  `json:"remaining_payment"`
	Profit           decimal.Decimal  `json:"profit"`
	PaymentStatus    PaymentStatus    `json:"payment_status"`
	Overdue          bool             `json:"overdue"`
}
