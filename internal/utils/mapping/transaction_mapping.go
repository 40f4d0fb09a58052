package mapping

import (
	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// An empty project reference maps to NULL.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var projectID *string
	if d.ProjectID != "" {
		p := d.ProjectID
		projectID = &p
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Date:          d.Date,
		Type:          models.TransactionType(d.Type),
		Category:      d.Category,
		ProjectID:     projectID,
		PaymentMethod: d.PaymentMethod,
		Amount:        d.Amount,
		Note:          d.Note,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	projectID := ""
	if m.ProjectID != nil {
		projectID = *m.ProjectID
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Date:          m.Date,
		Type:          domain.TransactionType(m.Type),
		Category:      m.Category,
		ProjectID:     projectID,
		PaymentMethod: m.PaymentMethod,
		Amount:        m.Amount,
		Note:          m.Note,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
