package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finoraid/finora_backend/internal/apperrors"
	"github.com/finoraid/finora_backend/internal/core/domain"
	portsrepo "github.com/finoraid/finora_backend/internal/core/ports/repositories"
	"github.com/finoraid/finora_backend/internal/models"
	"github.com/finoraid/finora_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(db *pgxpool.Pool) portsrepo.DebtRepository {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxDebtRepository implements portsrepo.DebtRepository
var _ portsrepo.DebtRepository = (*PgxDebtRepository)(nil)

const debtColumns = `debt_id, user_id, date, lender_name, category, total_amount, paid_amount, due_date, note, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	query := `
        INSERT INTO debts (` + debtColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID, m.UserID, m.Date, m.LenderName, m.Category,
		m.TotalAmount, m.PaidAmount, m.DueDate, m.Note,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save debt: %w", err)
	}
	return nil
}

func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE user_id = $1 AND debt_id = $2;
	`
	m, err := scanDebt(r.Pool.QueryRow(ctx, query, userID, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by id: %w", err)
	}

	payments, err := r.listPayments(ctx, []string{m.DebtID})
	if err != nil {
		return nil, err
	}
	debt := mapping.ToDomainDebt(*m, payments[m.DebtID])
	return &debt, nil
}

func (r *PgxDebtRepository) ListDebtsByUser(ctx context.Context, userID string) ([]domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE user_id = $1
		ORDER BY date, debt_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var ms []models.Debt
	ids := make([]string, 0)
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		ms = append(ms, *m)
		ids = append(ids, m.DebtID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", err)
	}

	payments, err := r.listPayments(ctx, ids)
	if err != nil {
		return nil, err
	}

	debts := make([]domain.Debt, 0, len(ms))
	for _, m := range ms {
		debts = append(debts, mapping.ToDomainDebt(m, payments[m.DebtID]))
	}
	return debts, nil
}

func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	query := `
		UPDATE debts SET
			date = $3,
			lender_name = $4,
			category = $5,
			total_amount = $6,
			paid_amount = $7,
			due_date = $8,
			note = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE user_id = $1 AND debt_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.DebtID, m.Date, m.LenderName, m.Category,
		m.TotalAmount, m.PaidAmount, m.DueDate, m.Note,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, userID, debtID string) error {
	// debt_payments rows go with the debt via ON DELETE CASCADE.
	tag, err := r.Pool.Exec(ctx, `DELETE FROM debts WHERE user_id = $1 AND debt_id = $2;`, userID, debtID)
	if err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddDebtPayment appends the payment to the history and bumps paid_amount
// inside one database transaction so the two can never diverge.
func (r *PgxDebtRepository) AddDebtPayment(ctx context.Context, userID, debtID string, payment domain.DebtPayment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		UPDATE debts SET
			paid_amount = paid_amount + $3,
			last_updated_at = $4
		WHERE user_id = $1 AND debt_id = $2;
	`, userID, debtID, payment.Amount, time.Now())
	if err != nil {
		return fmt.Errorf("failed to bump debt paid amount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO debt_payments (debt_payment_id, debt_id, date, amount, method, note, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM debt_payments WHERE debt_id = $2));
	`, uuid.NewString(), debtID, payment.Date, payment.Amount, payment.Method, payment.Note)
	if err != nil {
		return fmt.Errorf("failed to insert debt payment: %w", err)
	}

	return r.Commit(ctx, tx)
}

// listPayments loads the ordered payment history for the given debt ids,
// grouped by debt id.
func (r *PgxDebtRepository) listPayments(ctx context.Context, debtIDs []string) (map[string][]models.DebtPayment, error) {
	grouped := make(map[string][]models.DebtPayment)
	if len(debtIDs) == 0 {
		return grouped, nil
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT debt_payment_id, debt_id, date, amount, method, note, sort_order
		FROM debt_payments
		WHERE debt_id = ANY($1)
		ORDER BY debt_id, sort_order;
	`, debtIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list debt payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.DebtPayment
		if err := rows.Scan(&p.DebtPaymentID, &p.DebtID, &p.Date, &p.Amount, &p.Method, &p.Note, &p.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan debt payment row: %w", err)
		}
		grouped[p.DebtID] = append(grouped[p.DebtID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt payment rows: %w", err)
	}
	return grouped, nil
}

func scanDebt(row pgx.Row) (*models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID, &m.UserID, &m.Date, &m.LenderName, &m.Category,
		&m.TotalAmount, &m.PaidAmount, &m.DueDate, &m.Note,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
