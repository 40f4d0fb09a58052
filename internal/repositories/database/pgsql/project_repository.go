package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finoraid/finora_backend/internal/apperrors"
	"github.com/finoraid/finora_backend/internal/core/domain"
	portsrepo "github.com/finoraid/finora_backend/internal/core/ports/repositories"
	"github.com/finoraid/finora_backend/internal/models"
	"github.com/finoraid/finora_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	db *pgxpool.Pool
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{db: db}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepository
var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, user_id, client_name, project_name, project_type, project_date, location, contract_value, payment_deadline, phone, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
        INSERT INTO projects (` + projectColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		m.ProjectID, m.UserID, m.ClientName, m.ProjectName, m.ProjectType,
		m.ProjectDate, m.Location, m.ContractValue, m.PaymentDeadline, m.Phone,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE user_id = $1 AND project_id = $2;
	`
	m, err := scanProject(r.db.QueryRow(ctx, query, userID, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by id: %w", err)
	}
	project := mapping.ToDomainProject(*m)
	return &project, nil
}

func (r *PgxProjectRepository) ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE user_id = $1
		ORDER BY project_date, project_id;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, mapping.ToDomainProject(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		UPDATE projects SET
			client_name = $3,
			project_name = $4,
			project_type = $5,
			project_date = $6,
			location = $7,
			contract_value = $8,
			payment_deadline = $9,
			phone = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE user_id = $1 AND project_id = $2;
	`
	tag, err := r.db.Exec(ctx, query,
		m.UserID, m.ProjectID, m.ClientName, m.ProjectName, m.ProjectType,
		m.ProjectDate, m.Location, m.ContractValue, m.PaymentDeadline, m.Phone,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, userID, projectID string) error {
	// Transactions referencing the project are deliberately left in place;
	// they stay part of the ledger as ownerless cash events.
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE user_id = $1 AND project_id = $2;`, userID, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID, &m.UserID, &m.ClientName, &m.ProjectName, &m.ProjectType,
		&m.ProjectDate, &m.Location, &m.ContractValue, &m.PaymentDeadline, &m.Phone,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
