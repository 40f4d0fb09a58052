package services

import (
	"github.com/shopspring/decimal"

	"github.com/finoraid/finora_backend/internal/core/engine"
	portsrepo "github.com/finoraid/finora_backend/internal/core/ports/repositories"
	portssvc "github.com/finoraid/finora_backend/internal/core/ports/services"
	"github.com/finoraid/finora_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	engineCfg := engine.DefaultConfig()
	if cfg.ForecastWindowDays > 0 {
		engineCfg.ForecastWindowDays = cfg.ForecastWindowDays
	}
	if cfg.ForecastSafeBalance > 0 {
		engineCfg.ForecastSafeBalance = decimal.NewFromInt(cfg.ForecastSafeBalance)
	}

	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(repos.User, cfg),
		User:        NewUserService(repos.User),
		Project:     NewProjectService(repos.Project, repos.Transaction),
		Transaction: NewTransactionService(repos.Transaction),
		Debt:        NewDebtService(repos.Debt),
		Dashboard:   NewDashboardService(repos, engineCfg),
		Reminder:    NewReminderService(repos),
	}
}
