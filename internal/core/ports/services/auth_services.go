package services

import (
	"context"

	"github.com/finoraid/finora_backend/internal/core/domain"
)

// AuthSvcFacade defines authentication operations: local email+password
// registration and login with JWT issuance.
type AuthSvcFacade interface {
	// Register creates a new user with a bcrypt-hashed password.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Login verifies credentials and returns the user plus a signed token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
