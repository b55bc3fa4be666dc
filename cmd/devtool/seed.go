package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/ProjectLife_Go/internal/bootstrap"
	"github.com/osse101/ProjectLife_Go/internal/concurrency"
	"github.com/osse101/ProjectLife_Go/internal/config"
	"github.com/osse101/ProjectLife_Go/internal/domain"
	"github.com/osse101/ProjectLife_Go/internal/planner"
	"github.com/osse101/ProjectLife_Go/internal/progression"
	"github.com/osse101/ProjectLife_Go/internal/repository"
	"github.com/osse101/ProjectLife_Go/internal/user"
)

const (
	defaultSeedUsername = "demo"
	defaultSeedGoal     = "Run a half marathon"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Create a demo user with an offline quest chain [username] [goal...]"
}

func (c *SeedCommand) Run(args []string) error {
	username := defaultSeedUsername
	goal := defaultSeedGoal
	if len(args) > 0 {
		username = args[0]
	}
	if len(args) > 1 {
		goal = strings.Join(args[1:], " ")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.StoreDriver == config.StoreDriverMemory {
		PrintWarning("STORE_DRIVER=memory: seeded data is discarded when devtool exits")
	}

	ctx := context.Background()
	store, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	PrintHeader(fmt.Sprintf("Seeding %s (%s)", username, cfg.StoreDriver))

	u, quests, err := seedUser(ctx, store, user.CacheConfig{Size: cfg.UserCacheSize, TTL: cfg.UserCacheTTL}, username, goal)
	if err != nil {
		return err
	}

	PrintSuccess("User %s (id %s, level %d)", u.Username, u.ID, u.Level)
	for _, q := range quests {
		visibility := "hidden"
		if q.IsVisible {
			visibility = "visible"
		}
		PrintInfo("step %d [%s] %s (%s, sp %d)", q.Step, q.Difficulty, q.Title, visibility, q.SPCost)
	}
	return nil
}

// seedUser registers username, or reuses it when taken, and ingests an offline plan for goal
func seedUser(ctx context.Context, store repository.Progression, cacheCfg user.CacheConfig, username, goal string) (*domain.User, []domain.Quest, error) {
	locks := concurrency.NewLockManager()
	users := user.NewService(store, locks, nil, cacheCfg)
	engine := progression.NewEngine(store, locks, nil, users)

	u, err := users.RegisterUser(ctx, username)
	if errors.Is(err, domain.ErrUsernameTaken) {
		PrintInfo("User %s already exists, adding a new chain", username)
		u, err = store.GetUserByUsername(ctx, username)
	}
	if err != nil {
		return nil, nil, err
	}

	offline, err := planner.NewOfflinePlanner()
	if err != nil {
		return nil, nil, err
	}
	steps, err := offline.GeneratePlan(ctx, goal)
	if err != nil {
		return nil, nil, err
	}

	quests, err := engine.IngestGoalPlan(ctx, u.ID, steps)
	if err != nil {
		return nil, nil, err
	}
	return u, quests, nil
}
