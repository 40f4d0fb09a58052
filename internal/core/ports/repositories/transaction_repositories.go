package repositories

import (
	"context"

	"github.com/finoraid/finora_backend/internal/core/domain"
)

// TransactionRepository defines persistence operations for ledger
// transactions, scoped to one user.
type TransactionRepository interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID retrieves one transaction owned by the user, or
	// apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves all transactions owned by the user.
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)

	// ListTransactionsByProject retrieves the user's transactions linked to
	// one project.
	ListTransactionsByProject(ctx context.Context, userID, projectID string) ([]domain.Transaction, error)

	// UpdateTransaction persists changes to an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by the user.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
