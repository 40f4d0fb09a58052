package repositories

import (
	"context"

	"github.com/finoraid/finora_backend/internal/core/domain"
)

// DebtRepository defines persistence operations for debts and their
// payment history, scoped to one user.
type DebtRepository interface {
	RepositoryWithTx

	// SaveDebt persists a new debt.
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// FindDebtByID retrieves one debt (with its payments) owned by the
	// user, or apperrors.ErrNotFound.
	FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error)

	// ListDebtsByUser retrieves all debts (with payments) owned by the user.
	ListDebtsByUser(ctx context.Context, userID string) ([]domain.Debt, error)

	// UpdateDebt persists changes to an existing debt.
	UpdateDebt(ctx context.Context, debt domain.Debt) error

	// DeleteDebt removes a debt owned by the user.
	DeleteDebt(ctx context.Context, userID, debtID string) error

	// AddDebtPayment appends one payment to the debt's history and bumps
	// its paid amount atomically.
	AddDebtPayment(ctx context.Context, userID, debtID string, payment domain.DebtPayment) error
}
