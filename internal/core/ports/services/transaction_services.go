package services

import (
	"context"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/dto"
)

// TransactionSvcFacade defines CRUD operations on ledger transactions.
type TransactionSvcFacade interface {
	// CreateTransaction records a cash event for the user.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransaction returns one transaction owned by the user.
	GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns all of the user's transactions.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// UpdateTransaction applies the changes in req to an existing transaction.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction owned by the user.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
