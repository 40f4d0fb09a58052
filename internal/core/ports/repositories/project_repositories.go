package repositories

import (
	"context"

	"github.com/finoraid/finora_backend/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects. Every
// read is scoped to one user; the engine is never handed records that
// belong to anyone else.
type ProjectRepository interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// FindProjectByID retrieves one project owned by the user, or
	// apperrors.ErrNotFound.
	FindProjectByID(ctx context.Context, userID, projectID string) (*domain.Project, error)

	// ListProjectsByUser retrieves all projects owned by the user.
	ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error)

	// UpdateProject persists changes to an existing project.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project owned by the user.
	DeleteProject(ctx context.Context, userID, projectID string) error
}
