package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	qb "github.com/riskibarqy/ro-transfer-hub/internal/platform/querybuilder"
)

type AliasRepository struct {
	db *sqlx.DB
}

func NewAliasRepository(db *sqlx.DB) *AliasRepository {
	return &AliasRepository{db: db}
}

func (r *AliasRepository) ListAliases(ctx context.Context) ([]club.Alias, error) {
	query, args, err := qb.Select("variant_name", "standard_name").From("club_aliases").OrderBy("variant_name").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club aliases query: %w", err)
	}

	var rows []clubAliasTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club aliases: %w", err)
	}

	out := make([]club.Alias, 0, len(rows))
	for _, row := range rows {
		out = append(out, club.Alias{Variant: row.Variant, Standard: row.Standard})
	}
	return out, nil
}

func (r *AliasRepository) ReplaceAliases(ctx context.Context, aliases []club.Alias) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace club aliases: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := replaceAliases(ctx, tx, aliases); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace club aliases tx: %w", err)
	}
	return nil
}

func replaceAliases(ctx context.Context, tx *sqlx.Tx, aliases []club.Alias) error {
	query, args, err := qb.DeleteFrom("club_aliases").ToSQL()
	if err != nil {
		return fmt.Errorf("build clear club aliases query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear club aliases: %w", err)
	}
	if len(aliases) == 0 {
		return nil
	}

	models := make([]clubAliasTableModel, 0, len(aliases))
	for _, a := range aliases {
		models = append(models, clubAliasTableModel{Variant: a.Variant, Standard: a.Standard})
	}
	builder, err := qb.InsertModels("club_aliases", models)
	if err != nil {
		return fmt.Errorf("build insert club aliases query: %w", err)
	}
	query, args, err = builder.OnConflictUpdate("variant_name").ToSQL()
	if err != nil {
		return fmt.Errorf("build insert club aliases query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert club aliases rows=%d: %w", len(models), err)
	}
	return nil
}
