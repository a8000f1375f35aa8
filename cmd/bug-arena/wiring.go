package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bug-arena/internal/catalog"
	"github.com/KirkDiggler/bug-arena/internal/config"
	"github.com/KirkDiggler/bug-arena/internal/orchestrators/game"
	"github.com/KirkDiggler/bug-arena/internal/pkg/clock"
	"github.com/KirkDiggler/bug-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/bug-arena/internal/pkg/random"
	redisclient "github.com/KirkDiggler/bug-arena/internal/redis"
	"github.com/KirkDiggler/bug-arena/internal/repositories/battlesession"
	"github.com/KirkDiggler/bug-arena/internal/repositories/collection"
	"github.com/KirkDiggler/bug-arena/internal/repositories/encounters"
	progressionrepo "github.com/KirkDiggler/bug-arena/internal/repositories/progression"
	"github.com/KirkDiggler/bug-arena/internal/sqlite"
)

const redisPingTimeout = 3 * time.Second

// app is a wired game plus the player it plays as
type app struct {
	service  game.Service
	playerID string
	close    func()
}

// loadConfig reads the environment and applies any flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = config.Store(storeFlag)
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddrFlag
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = sqlitePathFlag
	}
	if flags.Changed("player") {
		cfg.PlayerID = playerFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(cfg *config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

// newApp wires repositories for the configured store into the orchestrator.
// Anonymous players always get memory storage.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	clk := clock.New()
	playerID := cfg.PlayerID
	store := cfg.Store

	if cfg.Anonymous() {
		playerID = idgen.NewUUID("anon").Generate()
		if store != config.StoreMemory {
			slog.Warn("no player ID set, using memory storage", "requested_store", store)
		}
		store = config.StoreMemory
	}

	gameCfg := &game.Config{
		Catalog:     catalog.Default(),
		Random:      random.NewDiceSource(nil),
		Clock:       clk,
		IDGenerator: idgen.NewUUID("battle"),
		BattleTTL:   cfg.BattleTTL,
	}
	closer := func() {}

	switch store {
	case config.StoreMemory:
		gameCfg.ProgressionRepo = progressionrepo.NewInMemory(clk)
		gameCfg.CollectionRepo = collection.NewInMemory()
		gameCfg.EncounterRepo = encounters.NewInMemory()
		gameCfg.BattleRepo = battlesession.NewInMemory(clk)

	case config.StoreRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
			_ = client.Close()
			return nil, err
		}
		closer = func() { _ = client.Close() }
		if err := wireRedis(gameCfg, client, clk); err != nil {
			closer()
			return nil, err
		}

	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		closer = func() { _ = db.Close() }

		progRepo, err := progressionrepo.NewSQLite(&progressionrepo.SQLiteConfig{DB: db, Clock: clk})
		if err != nil {
			closer()
			return nil, err
		}
		collRepo, err := collection.NewSQLite(&collection.SQLiteConfig{DB: db})
		if err != nil {
			closer()
			return nil, err
		}
		gameCfg.ProgressionRepo = progRepo
		gameCfg.CollectionRepo = collRepo
		// batches and battles are short lived and stay in memory
		gameCfg.EncounterRepo = encounters.NewInMemory()
		gameCfg.BattleRepo = battlesession.NewInMemory(clk)

	default:
		return nil, fmt.Errorf("unknown store %q", store)
	}

	svc, err := game.NewOrchestrator(gameCfg)
	if err != nil {
		closer()
		return nil, err
	}

	slog.Debug("game wired", "store", store, "player_id", playerID)
	return &app{service: svc, playerID: playerID, close: closer}, nil
}

func wireRedis(gameCfg *game.Config, client redisclient.Client, clk clock.Clock) error {
	progRepo, err := progressionrepo.NewRedis(&progressionrepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return err
	}
	collRepo, err := collection.NewRedis(&collection.RedisConfig{Client: client})
	if err != nil {
		return err
	}
	encRepo, err := encounters.NewRedis(&encounters.RedisConfig{Client: client})
	if err != nil {
		return err
	}
	batRepo, err := battlesession.NewRedisRepository(&battlesession.Config{Client: client, Clock: clk})
	if err != nil {
		return err
	}

	gameCfg.ProgressionRepo = progRepo
	gameCfg.CollectionRepo = collRepo
	gameCfg.EncounterRepo = encRepo
	gameCfg.BattleRepo = batRepo
	return nil
}

// startApp is the shared preamble of every command
func startApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	setupLogger(cfg)
	return newApp(cmd.Context(), cfg)
}
