package pgsql

import (
	portsrepo "github.com/finoraid/finora_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		User:        newPgxUserRepository(dbPool),
		Project:     newPgxProjectRepository(dbPool),
		Transaction: newPgxTransactionRepository(dbPool),
		Debt:        newPgxDebtRepository(dbPool),
		Snooze:      newPgxSnoozeRepository(dbPool),
	}
}
