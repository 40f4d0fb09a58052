// Package engine contains the financial derivation engine: the pure
// computations that turn raw transaction, project and debt records into
// payment status, remaining balances, profit, cashflow aggregates and the
// liquidity forecast. Nothing in this package performs I/O; "now" is
// always an explicit parameter and every function is deterministic given
// its inputs.
package engine

import (
	"time"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// paymentTypeLabel projects a payment transaction's category onto the two
// labels the payment history uses.
func paymentTypeLabel(category string) string {
	if category == "DP" {
		return "DP"
	}
	return "Pelunasan"
}

// EnrichProject derives a project's financial state from its payment and
// expense sequences. The derivation is idempotent: calling it again over
// the same inputs and the same "now" yields identical results.
func EnrichProject(p domain.Project, payments []domain.ProjectPayment, expenses []domain.ProjectExpense, now time.Time) domain.EnrichedProject {
	totalPaid := decimal.Zero
	for _, payment := range payments {
		totalPaid = totalPaid.Add(payment.Amount)
	}
	totalExpense := decimal.Zero
	for _, expense := range expenses {
		totalExpense = totalExpense.Add(expense.Amount)
	}

	remaining := p.ContractValue.Sub(totalPaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	status := domain.PaymentStatusUnpaid
	switch {
	case totalPaid.IsZero():
		status = domain.PaymentStatusUnpaid
	case totalPaid.LessThan(p.ContractValue):
		status = domain.PaymentStatusDownPayment
	default:
		status = domain.PaymentStatusPaid
	}

	// An unparseable project date never flags the project overdue.
	overdue := false
	if status != domain.PaymentStatusPaid {
		if eventDate, ok := parseDate(p.ProjectDate); ok {
			overdue = eventDate.Before(now)
		}
	}

	if payments == nil {
		payments = []domain.ProjectPayment{}
	}
	if expenses == nil {
		expenses = []domain.ProjectExpense{}
	}

	return domain.EnrichedProject{
		Project:          p,
		Payments:         payments,
		Expenses:         expenses,
		TotalPaid:        totalPaid,
		TotalExpense:     totalExpense,
		RemainingPayment: remaining,
		Profit:           totalPaid.Sub(totalExpense),
		PaymentStatus:    status,
		Overdue:          overdue,
	}
}

// EnrichProjects partitions the user's transactions into per-project
// payment and expense sequences and enriches every project. Transactions
// referencing a project id that no longer exists stay out of the project
// sequences; they remain real cash events and still count in the
// portfolio-wide sums computed elsewhere.
func EnrichProjects(projects []domain.Project, transactions []domain.Transaction, now time.Time) []domain.EnrichedProject {
	paymentsByProject := make(map[string][]domain.ProjectPayment)
	expensesByProject := make(map[string][]domain.ProjectExpense)

	known := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		known[p.ProjectID] = struct{}{}
	}

	for _, t := range transactions {
		if t.ProjectID == "" {
			continue
		}
		if _, ok := known[t.ProjectID]; !ok {
			continue // ownerless: the referenced project is gone
		}
		switch t.Type {
		case domain.Income:
			paymentsByProject[t.ProjectID] = append(paymentsByProject[t.ProjectID], domain.ProjectPayment{
				Date:   t.Date,
				Type:   paymentTypeLabel(t.Category),
				Amount: t.Amount,
				Method: t.PaymentMethod,
				Note:   t.Note,
			})
		case domain.Expense:
			expensesByProject[t.ProjectID] = append(expensesByProject[t.ProjectID], domain.ProjectExpense{
				Date:     t.Date,
				Category: t.Category,
				Amount:   t.Amount,
				Note:     t.Note,
			})
		}
	}

	enriched := make([]domain.EnrichedProject, 0, len(projects))
	for _, p := range projects {
		enriched = append(enriched, EnrichProject(p, paymentsByProject[p.ProjectID], expensesByProject[p.ProjectID], now))
	}
	return enriched
}
