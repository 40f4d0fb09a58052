package engine

import (
	"time"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DeriveDebt computes a debt's remaining amount and status. A missing or
// unparseable due date keeps the debt "Aktif" rather than overdue.
func DeriveDebt(d domain.Debt, now time.Time) domain.DerivedDebt {
	remaining := d.TotalAmount.Sub(d.PaidAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	status := domain.DebtStatusActive
	switch {
	case remaining.IsZero():
		status = domain.DebtStatusPaid
	case dateBeforeToday(d.DueDate, now):
		status = domain.DebtStatusOverdue
	}

	if d.Payments == nil {
		d.Payments = []domain.DebtPayment{}
	}

	return domain.DerivedDebt{
		Debt:            d,
		RemainingAmount: remaining,
		Status:          status,
	}
}

// DeriveDebts derives every debt in the slice.
func DeriveDebts(debts []domain.Debt, now time.Time) []domain.DerivedDebt {
	derived := make([]domain.DerivedDebt, 0, len(debts))
	for _, d := range debts {
		derived = append(derived, DeriveDebt(d, now))
	}
	return derived
}

// DebtTotals sums contract totals, remaining amounts and the overdue slice
// of the remaining amounts across all debts.
func DebtTotals(debts []domain.DerivedDebt) domain.DebtTotals {
	totals := domain.DebtTotals{
		Total:            decimal.Zero,
		Remaining:        decimal.Zero,
		OverdueRemaining: decimal.Zero,
	}
	for _, d := range debts {
		totals.Total = totals.Total.Add(d.TotalAmount)
		totals.Remaining = totals.Remaining.Add(d.RemainingAmount)
		if d.Status == domain.DebtStatusOverdue {
			totals.OverdueRemaining = totals.OverdueRemaining.Add(d.RemainingAmount)
		}
	}
	return totals
}
