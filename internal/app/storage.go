package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/mock-draft/internal/config"
	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/mock-draft/internal/infrastructure/repository/file"
	"github.com/riskibarqy/mock-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/mock-draft/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/mock-draft/internal/infrastructure/repository/sqlite"
	basecache "github.com/riskibarqy/mock-draft/internal/platform/cache"
	"github.com/riskibarqy/mock-draft/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	players   player.Repository
	customADP player.CustomADPRepository
	saved     draft.Repository
	presets   draft.PresetRepository
	db        *sqlx.DB
}

func (r *repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (*repositories, error) {
	board, err := loadBoard(cfg)
	if err != nil {
		return nil, err
	}
	presets, err := loadPresets(cfg)
	if err != nil {
		return nil, err
	}

	repos := &repositories{presets: memory.NewPresetRepository(presets)}

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, err
		}
		repos.db = db
		if cfg.DBBootstrapSeed {
			inserted, err := postgres.BootstrapSeed(ctx, db, board)
			if err != nil {
				_ = db.Close()
				return nil, err
			}
			if inserted > 0 {
				logger.Info("seeded player board", "players", inserted)
			}
		}
		repos.players = postgres.NewPlayerRepository(db)
		repos.customADP = postgres.NewCustomADPRepository(db)
		repos.saved = postgres.NewDraftRepository(db)
	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		repos.db = db
		repos.players = memory.NewPlayerRepository(board)
		repos.customADP = sqlite.NewCustomADPRepository(db)
		repos.saved = sqlite.NewDraftRepository(db)
	default:
		repos.players = memory.NewPlayerRepository(board)
		repos.customADP = memory.NewCustomADPRepository()
		repos.saved = memory.NewDraftRepository()
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.players = cache.NewPlayerRepository(repos.players, store)
		repos.customADP = cache.NewCustomADPRepository(repos.customADP, store)
	}

	logger.Info("storage ready",
		"driver", cfg.StorageDriver,
		"players", len(board),
		"presets", len(presets),
		"cache_enabled", cfg.CacheEnabled,
	)
	return repos, nil
}

func loadBoard(cfg config.Config) ([]player.Player, error) {
	if cfg.PlayersFile == "" {
		return memory.SeedPlayers(), nil
	}
	players, err := file.LoadPlayers(cfg.PlayersFile)
	if err != nil {
		return nil, fmt.Errorf("load players file: %w", err)
	}
	return players, nil
}

func loadPresets(cfg config.Config) ([]draft.Preset, error) {
	if cfg.PresetsFile == "" {
		return memory.SeedPresets(), nil
	}
	presets, err := file.LoadPresets(cfg.PresetsFile)
	if err != nil {
		return nil, fmt.Errorf("load presets file: %w", err)
	}
	return presets, nil
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dsn); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dsn, opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
