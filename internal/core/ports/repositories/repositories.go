package repositories

// RepositoryProvider aggregates all repository interfaces the application
// needs, so wiring code can pass one value around.
type RepositoryProvider struct {
	User        UserRepository
	Project     ProjectRepository
	Transaction TransactionRepository
	Debt        DebtRepository
	Snooze      SnoozeRepository
}
