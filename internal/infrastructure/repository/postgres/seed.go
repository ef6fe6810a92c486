package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the curated club aliases into an empty club_aliases table.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM club_aliases`); err != nil {
		return fmt.Errorf("count club aliases for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := replaceAliases(ctx, tx, memory.SeedAliases()); err != nil {
		return fmt.Errorf("seed club aliases: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
