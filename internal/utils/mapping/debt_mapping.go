package mapping

import (
	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/models"
)

// ToModelDebt converts a domain Debt to a model Debt. The payment history
// is persisted separately; see ToModelDebtPayment.
func ToModelDebt(d domain.Debt) models.Debt {
	var dueDate *string
	if d.DueDate != "" {
		v := d.DueDate
		dueDate = &v
	}
	return models.Debt{
		DebtID:      d.DebtID,
		UserID:      d.UserID,
		Date:        d.Date,
		LenderName:  d.LenderName,
		Category:    d.Category,
		TotalAmount: d.TotalAmount,
		PaidAmount:  d.PaidAmount,
		DueDate:     dueDate,
		Note:        d.Note,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebt converts a model Debt plus its payment rows to a domain Debt
func ToDomainDebt(m models.Debt, payments []models.DebtPayment) domain.Debt {
	dueDate := ""
	if m.DueDate != nil {
		dueDate = *m.DueDate
	}
	history := make([]domain.DebtPayment, 0, len(payments))
	for _, p := range payments {
		history = append(history, domain.DebtPayment{
			Date:   p.Date,
			Amount: p.Amount,
			Method: p.Method,
			Note:   p.Note,
		})
	}
	return domain.Debt{
		DebtID:      m.DebtID,
		UserID:      m.UserID,
		Date:        m.Date,
		LenderName:  m.LenderName,
		Category:    m.Category,
		TotalAmount: m.TotalAmount,
		PaidAmount:  m.PaidAmount,
		DueDate:     dueDate,
		Note:        m.Note,
		Payments:    history,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
