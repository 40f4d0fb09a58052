package services

import (
	"context"

	"github.com/finoraid/finora_backend/internal/core/domain"
)

// UserSvcFacade defines read operations over user accounts.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by id, or apperrors.ErrNotFound.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
