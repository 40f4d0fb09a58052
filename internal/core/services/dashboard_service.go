package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sort"
	"time"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/core/engine"
	portsrepo "github.com/finoraid/finora_backend/internal/core/ports/repositories"
	portssvc "github.com/finoraid/finora_backend/internal/core/ports/services"
	lru "github.com/hashicorp/golang-lru/v2"
)

// dashboardCacheSize bounds the memoized dashboards kept in memory. One
// entry per distinct (user, snapshot, day); old entries fall out on their
// own.
const dashboardCacheSize = 128

// dashboardService implements the DashboardSvcFacade interface. It is the
// glue between the persistence collaborator and the pure derivation
// engine: load the user's snapshot, run the engine, optionally serve a
// memoized result when the snapshot has not changed.
type dashboardService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
	txnRepo     portsrepo.TransactionRepository
	debtRepo    portsrepo.DebtRepository
	snoozeRepo  portsrepo.SnoozeRepository
	engineCfg   engine.Config
	cache       *lru.Cache[string, domain.Dashboard]
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos portsrepo.RepositoryProvider, engineCfg engine.Config) portssvc.DashboardSvcFacade {
	// Cache construction only fails on a non-positive size.
	cache, _ := lru.New[string, domain.Dashboard](dashboardCacheSize)
	return &dashboardService{
		projectRepo: repos.Project,
		txnRepo:     repos.Transaction,
		debtRepo:    repos.Debt,
		snoozeRepo:  repos.Snooze,
		engineCfg:   engineCfg,
		cache:       cache,
	}
}

// Ensure dashboardService implements the DashboardSvcFacade interface
var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// loadSnapshot pulls the user's full record set from the repositories.
func (s *dashboardService) loadSnapshot(ctx context.Context, userID string) (engine.Snapshot, error) {
	projects, err := s.projectRepo.ListProjectsByUser(ctx, userID)
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("failed to load projects: %w", err)
	}
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("failed to load transactions: %w", err)
	}
	debts, err := s.debtRepo.ListDebtsByUser(ctx, userID)
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("failed to load debts: %w", err)
	}
	return engine.Snapshot{
		UserID:       userID,
		Projects:     projects,
		Transactions: txns,
		Debts:        debts,
	}, nil
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	snapshot, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load snapshot", slog.String("user_id", userID))
		return nil, err
	}

	snoozes, err := s.snoozeRepo.ListSnoozesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load reminder snoozes", slog.String("user_id", userID))
		return nil, err
	}

	now := time.Now()

	// The derivation depends on the snapshot, the snooze set and the
	// calendar day; key the memo by all three.
	key := fmt.Sprintf("%s|%s|%s|%s", userID, snapshot.Fingerprint(), now.Format(domain.DateLayout), snoozeKey(snoozes))
	if cached, ok := s.cache.Get(key); ok {
		s.LogDebug(ctx, "Dashboard served from cache", slog.String("user_id", userID))
		return &cached, nil
	}

	dashboard, err := engine.BuildDashboard(snapshot, now, s.engineCfg, snoozes)
	if err != nil {
		s.LogError(ctx, err, "Dashboard derivation rejected snapshot", slog.String("user_id", userID))
		return nil, err
	}

	s.cache.Add(key, dashboard)
	s.LogInfo(ctx, "Dashboard recomputed",
		slog.String("user_id", userID),
		slog.Int("projects", len(dashboard.Projects)),
		slog.Int("reminders", len(dashboard.Reminders)))
	return &dashboard, nil
}

// snoozeKey folds the snooze map into a stable cache-key fragment.
func snoozeKey(snoozes domain.SnoozeMap) string {
	ids := make([]string, 0, len(snoozes))
	for id := range snoozes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	h := fnv.New64a()
	for _, id := range ids {
		fmt.Fprintf(h, "%s=%s;", id, snoozes[id])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
