package mapping

import (
	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:       d.ProjectID,
		UserID:          d.UserID,
		ClientName:      d.ClientName,
		ProjectName:     d.ProjectName,
		ProjectType:     d.ProjectType,
		ProjectDate:     d.ProjectDate,
		Location:        d.Location,
		ContractValue:   d.ContractValue,
		PaymentDeadline: d.PaymentDeadline,
		Phone:           d.Phone,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:       m.ProjectID,
		UserID:          m.UserID,
		ClientName:      m.ClientName,
		ProjectName:     m.ProjectName,
		ProjectType:     m.ProjectType,
		ProjectDate:     m.ProjectDate,
		Location:        m.Location,
		ContractValue:   m.ContractValue,
		PaymentDeadline: m.PaymentDeadline,
		Phone:           m.Phone,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
