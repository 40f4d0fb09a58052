package dto

import "github.com/shopspring/decimal"

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	ClientName      string          `json:"client_name" binding:"required"`
	ProjectName     string          `json:"project_name" binding:"required"`
	ProjectType     string          `json:"project_type"`
	ProjectDate     string          `json:"project_date" binding:"omitempty,isodate"`
	Location        string          `json:"location"`
	ContractValue   decimal.Decimal `json:"contract_value" binding:"required"`
	PaymentDeadline string          `json:"payment_deadline" binding:"omitempty,isodate"`
	Phone           string          `json:"phone"`
}

// UpdateProjectRequest is the payload for updating a project. Nil fields
// are left unchanged.
type UpdateProjectRequest struct {
	ClientName      *string          `json:"client_name"`
	ProjectName     *string          `json:"project_name"`
	ProjectType     *string          `json:"project_type"`
	ProjectDate     *string          `json:"project_date" binding:"omitempty,isodate"`
	Location        *string          `json:"location"`
	ContractValue   *decimal.Decimal `json:"contract_value"`
	PaymentDeadline *string          `json:"payment_deadline" binding:"omitempty,isodate"`
	Phone           *string          `json:"phone"`
}
