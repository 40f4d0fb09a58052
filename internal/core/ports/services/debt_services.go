package services

import (
	"context"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/dto"
)

// DebtSvcFacade defines operations on debts. Reads return derived debts:
// remaining amount and status are recomputed on every call.
type DebtSvcFacade interface {
	// CreateDebt records a new debt for the user.
	CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.DerivedDebt, error)

	// GetDebt returns one derived debt owned by the user.
	GetDebt(ctx context.Context, userID, debtID string) (*domain.DerivedDebt, error)

	// ListDebts returns all of the user's debts, derived.
	ListDebts(ctx context.Context, userID string) ([]domain.DerivedDebt, error)

	// UpdateDebt applies the changes in req to an existing debt.
	UpdateDebt(ctx context.Context, userID, debtID string, req dto.UpdateDebtRequest) (*domain.DerivedDebt, error)

	// DeleteDebt removes a debt owned by the user.
	DeleteDebt(ctx context.Context, userID, debtID string) error

	// AddDebtPayment records an installment against the debt and returns
	// the re-derived debt.
	AddDebtPayment(ctx context.Context, userID, debtID string, req dto.CreateDebtPaymentRequest) (*domain.DerivedDebt, error)
}
