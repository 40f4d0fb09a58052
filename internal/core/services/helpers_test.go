package services_test

import (
	portsrepo "github.com/finoraid/finora_backend/internal/core/ports/repositories"
)

// testRepos bundles mocks into the provider shape the constructors take.
func testRepos(projects portsrepo.ProjectRepository, txns portsrepo.TransactionRepository, debts portsrepo.DebtRepository, snoozes portsrepo.SnoozeRepository) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Project:     projects,
		Transaction: txns,
		Debt:        debts,
		Snooze:      snoozes,
	}
}
