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
)

// reminderService implements the ReminderSvcFacade interface
type reminderService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
	txnRepo     portsrepo.TransactionRepository
	debtRepo    portsrepo.DebtRepository
	snoozeRepo  portsrepo.SnoozeRepository
}

// NewReminderService creates a new reminder service
func NewReminderService(repos portsrepo.RepositoryProvider) portssvc.ReminderSvcFacade {
	return &reminderService{
		projectRepo: repos.Project,
		txnRepo:     repos.Transaction,
		debtRepo:    repos.Debt,
		snoozeRepo:  repos.Snooze,
	}
}

// Ensure reminderService implements the ReminderSvcFacade interface
var _ portssvc.ReminderSvcFacade = (*reminderService)(nil)

func (s *reminderService) ListReminders(ctx context.Context, userID string) ([]domain.ReminderItem, error) {
	projects, err := s.projectRepo.ListProjectsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	debts, err := s.debtRepo.ListDebtsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}
	snoozes, err := s.snoozeRepo.ListSnoozesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reminder snoozes: %w", err)
	}

	now := time.Now()
	enriched := engine.EnrichProjects(projects, txns, now)
	derived := engine.DeriveDebts(debts, now)
	return engine.Reminders(enriched, derived, now, snoozes), nil
}

func (s *reminderService) SnoozeReminder(ctx context.Context, userID, reminderID, until string) error {
	if userID == "" || reminderID == "" {
		return fmt.Errorf("user id and reminder id are required: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	snooze := domain.ReminderSnooze{
		UserID:       userID,
		ReminderID:   reminderID,
		SnoozedUntil: until,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.snoozeRepo.UpsertSnooze(ctx, snooze); err != nil {
		s.LogError(ctx, err, "Failed to snooze reminder",
			slog.String("user_id", userID),
			slog.String("reminder_id", reminderID))
		return err
	}

	s.LogInfo(ctx, "Reminder snoozed",
		slog.String("reminder_id", reminderID),
		slog.String("until", until))
	return nil
}
