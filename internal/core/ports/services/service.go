package services

// ServiceContainer aggregates all service facades for route registration.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	User        UserSvcFacade
	Project     ProjectSvcFacade
	Transaction TransactionSvcFacade
	Debt        DebtSvcFacade
	Dashboard   DashboardSvcFacade
	Reminder    ReminderSvcFacade
}
