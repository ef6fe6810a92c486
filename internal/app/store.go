package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/ro-transfer-hub/internal/config"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/review"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/csvstore"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

// Stores groups the repositories of one storage driver.
type Stores struct {
	Transfers transfer.Repository
	Aliases   club.AliasRepository
	History   leaguehistory.Repository
	Reviews   review.Store

	db *sqlx.DB
}

func (s *Stores) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// OpenStores builds the repositories for cfg.StoreDriver. The review report
// always lives on disk so a reviewer can edit it.
func OpenStores(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Stores, error) {
	dataPath := func(rel string) string { return filepath.Join(cfg.DataDir, rel) }
	aliasPath := cfg.AliasFile
	if aliasPath == "" {
		aliasPath = dataPath(csvstore.AliasFile)
	}
	reviews := csvstore.NewReviewStore(dataPath(csvstore.ReviewFile))

	switch cfg.StoreDriver {
	case config.StoreMemory:
		return &Stores{
			Transfers: memory.NewTransferRepository(nil),
			Aliases:   memory.NewAliasRepository(memory.SeedAliases()),
			History:   memory.NewHistoryRepository(nil),
			Reviews:   memory.NewReviewStore(nil),
		}, nil
	case config.StorePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed postgres: %w", err)
		}
		logger.InfoContext(ctx, "postgres store ready", "db", dbNameFromURL(cfg.DBURL))
		return &Stores{
			Transfers: postgres.NewTransferRepository(db),
			Aliases:   postgres.NewAliasRepository(db),
			History:   postgres.NewHistoryRepository(db),
			Reviews:   reviews,
			db:        db,
		}, nil
	default:
		logger.DebugContext(ctx, "csv store ready", "data_dir", cfg.DataDir)
		return &Stores{
			Transfers: csvstore.NewTransferRepository(dataPath(csvstore.TransfersFile), logger),
			Aliases:   csvstore.NewAliasRepository(aliasPath),
			History:   csvstore.NewHistoryRepository(dataPath(csvstore.HistoryFile)),
			Reviews:   reviews,
		}, nil
	}
}
