package services

import (
	"context"

	"github.com/finoraid/finora_backend/internal/core/domain"
)

// DashboardSvcFacade defines the portfolio aggregation entry point.
type DashboardSvcFacade interface {
	// GetDashboard loads the user's full snapshot and derives every
	// dashboard view from it. The result is recomputed (or served from the
	// snapshot-fingerprint cache) on every call; derived state is never
	// stored.
	GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
}

// ReminderSvcFacade defines reminder listing and snoozing.
type ReminderSvcFacade interface {
	// ListReminders derives the current reminder list for the user.
	ListReminders(ctx context.Context, userID string) ([]domain.ReminderItem, error)

	// SnoozeReminder hides one reminder until the given ISO date. It never
	// mutates the underlying project or debt.
	SnoozeReminder(ctx context.Context, userID, reminderID, until string) error
}
