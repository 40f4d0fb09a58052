package engine

import (
	"fmt"
	"time"

	"github.com/finoraid/finora_backend/internal/apperrors"
	"github.com/finoraid/finora_backend/internal/core/domain"
)

// Snapshot is the full current set of one user's records, as supplied by
// the persistence collaborator. The engine never loads or mutates storage
// itself; callers hand it a snapshot and receive derived views.
type Snapshot struct {
	UserID       string
	Projects     []domain.Project
	Transactions []domain.Transaction
	Debts        []domain.Debt
}

// Validate enforces the single-user precondition. Aggregating records of
// another user would be a data leak, so a missing user id or any record
// with a mismatched owner fails fast instead of being filtered silently.
func (s Snapshot) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("%w: snapshot has no user id", apperrors.ErrUserMismatch)
	}
	for _, p := range s.Projects {
		if p.UserID != s.UserID {
			return fmt.Errorf("%w: project %s belongs to user %s", apperrors.ErrUserMismatch, p.ProjectID, p.UserID)
		}
	}
	for _, t := range s.Transactions {
		if t.UserID != s.UserID {
			return fmt.Errorf("%w: transaction %s belongs to user %s", apperrors.ErrUserMismatch, t.TransactionID, t.UserID)
		}
	}
	for _, d := range s.Debts {
		if d.UserID != s.UserID {
			return fmt.Errorf("%w: debt %s belongs to user %s", apperrors.ErrUserMismatch, d.DebtID, d.UserID)
		}
	}
	return nil
}

// BuildDashboard recomputes every derived view from the snapshot. Derived
// state is never patched incrementally; after any mutation callers refresh
// the snapshot and run the whole derivation again, which keeps the derived
// fields from ever drifting away from the transaction log.
func BuildDashboard(s Snapshot, now time.Time, cfg Config, snoozes domain.SnoozeMap) (domain.Dashboard, error) {
	if err := s.Validate(); err != nil {
		return domain.Dashboard{}, err
	}

	projects := EnrichProjects(s.Projects, s.Transactions, now)
	debts := DeriveDebts(s.Debts, now)
	summary := Summary(s.Transactions, now)
	receivables := Receivables(projects)

	return domain.Dashboard{
		Summary:           summary,
		Cashflow:          Cashflow(s.Transactions, now),
		ProfitPerMonth:    ProfitPerMonth(s.Transactions, now),
		Projects:          projects,
		Receivables:       receivables,
		Debts:             debts,
		DebtTotals:        DebtTotals(debts),
		ExpenseByCategory: ExpenseByCategory(s.Transactions),
		TopProjects:       TopProjects(projects),
		Forecast:          BuildForecast(summary.Balance, receivables, debts, now, cfg),
		Reminders:         Reminders(projects, debts, now, snoozes),
		OverdueCounts:     CountOverdue(projects, debts, now),
	}, nil
}
