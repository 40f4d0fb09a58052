package repositories

import (
	"context"

	"github.com/finoraid/finora_backend/internal/core/domain"
)

// SnoozeRepository defines persistence operations for reminder snoozes.
// A snooze is keyed by (user, reminder id) and only ever suppresses a
// derived reminder; it never touches the underlying project or debt.
type SnoozeRepository interface {
	// UpsertSnooze creates or replaces the snooze for a reminder id.
	UpsertSnooze(ctx context.Context, snooze domain.ReminderSnooze) error

	// ListSnoozesByUser retrieves all snoozes of the user as a map keyed by
	// reminder id.
	ListSnoozesByUser(ctx context.Context, userID string) (domain.SnoozeMap, error)
}
