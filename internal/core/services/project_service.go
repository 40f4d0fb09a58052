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

// projectService implements the ProjectSvcFacade interface. Reads run the
// derivation engine over the project's transactions; derived fields never
// come from storage.
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
	txnRepo     portsrepo.TransactionRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo portsrepo.ProjectRepository, txnRepo portsrepo.TransactionRepository) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo, txnRepo: txnRepo}
}

// Ensure projectService implements the ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error) {
	if req.ContractValue.IsNegative() {
		return nil, fmt.Errorf("contract value must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:       uuid.NewString(),
		UserID:          userID,
		ClientName:      req.ClientName,
		ProjectName:     req.ProjectName,
		ProjectType:     req.ProjectType,
		ProjectDate:     req.ProjectDate,
		Location:        req.Location,
		ContractValue:   req.ContractValue,
		PaymentDeadline: req.PaymentDeadline,
		Phone:           req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *projectService) GetProject(ctx context.Context, userID, projectID string) (*domain.EnrichedProject, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsByProject(ctx, userID, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load project transactions", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to load project transactions: %w", err)
	}

	enriched := engine.EnrichProjects([]domain.Project{*project}, txns, time.Now())
	return &enriched[0], nil
}

func (s *projectService) ListProjects(ctx context.Context, userID string) ([]domain.EnrichedProject, error) {
	projects, err := s.projectRepo.ListProjectsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return engine.EnrichProjects(projects, txns, time.Now()), nil
}

func (s *projectService) UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.ProjectName != nil {
		project.ProjectName = *req.ProjectName
	}
	if req.ProjectType != nil {
		project.ProjectType = *req.ProjectType
	}
	if req.ProjectDate != nil {
		project.ProjectDate = *req.ProjectDate
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.ContractValue != nil {
		if req.ContractValue.IsNegative() {
			return nil, fmt.Errorf("contract value must not be negative: %w", apperrors.ErrValidation)
		}
		project.ContractValue = *req.ContractValue
	}
	if req.PaymentDeadline != nil {
		project.PaymentDeadline = *req.PaymentDeadline
	}
	if req.Phone != nil {
		project.Phone = *req.Phone
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = userID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.LogInfo(ctx, "Project updated", slog.String("project_id", projectID))
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	if err := s.projectRepo.DeleteProject(ctx, userID, projectID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}
