package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finoraid/finora_backend/internal/apperrors"
	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/core/engine"
	portsrepo "github.com/finoraid/finora_backend/internal/core/ports/repositories"
	portssvc "github.com/finoraid/finora_backend/internal/core/ports/services"
	"github.com/finoraid/finora_backend/internal/dto"
	"github.com/google/uuid"
)

// debtService implements the DebtSvcFacade interface. Remaining amounts
// and statuses are derived on every read via the engine.
type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepository
}

// NewDebtService creates a new debt service
func NewDebtService(debtRepo portsrepo.DebtRepository) portssvc.DebtSvcFacade {
	return &debtService{debtRepo: debtRepo}
}

// Ensure debtService implements the DebtSvcFacade interface
var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.DerivedDebt, error) {
	if req.TotalAmount.IsNegative() || req.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("amounts must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	debt := domain.Debt{
		DebtID:      uuid.NewString(),
		UserID:      userID,
		Date:        req.Date,
		LenderName:  req.LenderName,
		Category:    req.Category,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		DueDate:     req.DueDate,
		Note:        req.Note,
		Payments:    []domain.DebtPayment{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	s.LogInfo(ctx, "Debt created", slog.String("debt_id", debt.DebtID))
	derived := engine.DeriveDebt(debt, now)
	return &derived, nil
}

func (s *debtService) GetDebt(ctx context.Context, userID, debtID string) (*domain.DerivedDebt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}
	derived := engine.DeriveDebt(*debt, time.Now())
	return &derived, nil
}

func (s *debtService) ListDebts(ctx context.Context, userID string) ([]domain.DerivedDebt, error) {
	debts, err := s.debtRepo.ListDebtsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return engine.DeriveDebts(debts, time.Now()), nil
}

func (s *debtService) UpdateDebt(ctx context.Context, userID, debtID string, req dto.UpdateDebtRequest) (*domain.DerivedDebt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		debt.Date = *req.Date
	}
	if req.LenderName != nil {
		debt.LenderName = *req.LenderName
	}
	if req.Category != nil {
		debt.Category = *req.Category
	}
	if req.TotalAmount != nil {
		if req.TotalAmount.IsNegative() {
			return nil, fmt.Errorf("total amount must not be negative: %w", apperrors.ErrValidation)
		}
		debt.TotalAmount = *req.TotalAmount
	}
	if req.PaidAmount != nil {
		if req.PaidAmount.IsNegative() {
			return nil, fmt.Errorf("paid amount must not be negative: %w", apperrors.ErrValidation)
		}
		debt.PaidAmount = *req.PaidAmount
	}
	if req.DueDate != nil {
		debt.DueDate = *req.DueDate
	}
	if req.Note != nil {
		debt.Note = *req.Note
	}
	debt.LastUpdatedAt = time.Now()
	debt.LastUpdatedBy = userID

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to update debt", slog.String("debt_id", debtID))
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}

	s.LogInfo(ctx, "Debt updated", slog.String("debt_id", debtID))
	derived := engine.DeriveDebt(*debt, time.Now())
	return &derived, nil
}

func (s *debtService) DeleteDebt(ctx context.Context, userID, debtID string) error {
	if err := s.debtRepo.DeleteDebt(ctx, userID, debtID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Debt deleted", slog.String("debt_id", debtID))
	return nil
}

func (s *debtService) AddDebtPayment(ctx context.Context, userID, debtID string, req dto.CreateDebtPaymentRequest) (*domain.DerivedDebt, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}

	payment := domain.DebtPayment{
		Date:   req.Date,
		Amount: req.Amount,
		Method: req.Method,
		Note:   req.Note,
	}
	if err := s.debtRepo.AddDebtPayment(ctx, userID, debtID, payment); err != nil {
		s.LogError(ctx, err, "Failed to add debt payment", slog.String("debt_id", debtID))
		return nil, err
	}

	// Re-read and re-derive; the paid amount and the history changed.
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Debt payment recorded",
		slog.String("debt_id", debtID),
		slog.String("amount", req.Amount.String()))
	derived := engine.DeriveDebt(*debt, time.Now())
	return &derived, nil
}
