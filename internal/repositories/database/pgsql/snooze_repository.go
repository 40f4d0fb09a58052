package pgsql

import (
	"context"
	"fmt"

	"github.com/finoraid/finora_backend/internal/core/domain"
	portsrepo "github.com/finoraid/finora_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSnoozeRepository struct {
	db *pgxpool.Pool
}

func newPgxSnoozeRepository(db *pgxpool.Pool) portsrepo.SnoozeRepository {
	return &PgxSnoozeRepository{db: db}
}

// Ensure PgxSnoozeRepository implements portsrepo.SnoozeRepository
var _ portsrepo.SnoozeRepository = (*PgxSnoozeRepository)(nil)

func (r *PgxSnoozeRepository) UpsertSnooze(ctx context.Context, snooze domain.ReminderSnooze) error {
	query := `
        INSERT INTO reminder_snoozes (user_id, reminder_id, snoozed_until, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id, reminder_id) DO UPDATE SET
            snoozed_until = EXCLUDED.snoozed_until,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		snooze.UserID, snooze.ReminderID, snooze.SnoozedUntil,
		snooze.CreatedAt, snooze.CreatedBy, snooze.LastUpdatedAt, snooze.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert reminder snooze: %w", err)
	}
	return nil
}

func (r *PgxSnoozeRepository) ListSnoozesByUser(ctx context.Context, userID string) (domain.SnoozeMap, error) {
	rows, err := r.db.Query(ctx, `
		SELECT reminder_id, snoozed_until
		FROM reminder_snoozes
		WHERE user_id = $1;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder snoozes: %w", err)
	}
	defer rows.Close()

	snoozes := make(domain.SnoozeMap)
	for rows.Next() {
		var reminderID, until string
		if err := rows.Scan(&reminderID, &until); err != nil {
			return nil, fmt.Errorf("failed to scan reminder snooze row: %w", err)
		}
		snoozes[reminderID] = until
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminder snooze rows: %w", err)
	}
	return snoozes, nil
}
