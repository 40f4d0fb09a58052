package services

import (
	"context"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/dto"
)

// ProjectSvcFacade defines operations on projects. List and Get return
// enriched projects: the derived financial fields are recomputed from the
// transaction log on every call, never read back from storage.
type ProjectSvcFacade interface {
	// CreateProject creates a project for the user.
	CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error)

	// GetProject returns one enriched project.
	GetProject(ctx context.Context, userID, projectID string) (*domain.EnrichedProject, error)

	// ListProjects returns all of the user's projects, enriched.
	ListProjects(ctx context.Context, userID string) ([]domain.EnrichedProject, error)

	// UpdateProject applies the changes in req to an existing project.
	UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)

	// DeleteProject removes the project. Transactions referencing it are
	// kept: they remain real cash events and keep counting in the
	// portfolio-wide sums.
	DeleteProject(ctx context.Context, userID, projectID string) error
}
