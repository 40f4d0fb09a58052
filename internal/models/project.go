package models

import "github.com/shopspring/decimal"

// Project is the persistence shape of a project. Only raw contract data is
// stored; the derived financial state lives in the engine and is never
// written back.
type Project struct {
	ProjectID       string          `json:"projectID"`
	UserID          string          `json:"userID"`
	ClientName      string          `json:"clientName"`
	ProjectName     string          `json:"projectName"`
	ProjectType     string          `json:"projectType"`
	ProjectDate     string          `json:"projectDate"`
	Location        string          `json:"location"`
	ContractValue   decimal.Decimal `json:"contractValue"`
	PaymentDeadline string          `json:"paymentDeadline"`
	Phone           string          `json:"phone"`
	AuditFields
}
