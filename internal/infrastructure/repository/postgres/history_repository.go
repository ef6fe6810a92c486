package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	qb "github.com/riskibarqy/ro-transfer-hub/internal/platform/querybuilder"
)

type HistoryRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) ListEntries(ctx context.Context) ([]leaguehistory.Entry, error) {
	query, args, err := qb.Select("club_name", "club_id", "season", "league", "transfer_url", "position").
		From("club_league_history").
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league history query: %w", err)
	}

	var rows []leagueHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league history: %w", err)
	}

	out := make([]leaguehistory.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaguehistory.Entry{
			ClubName:    row.ClubName,
			ClubID:      row.ClubID,
			Season:      season.Label(row.Season),
			League:      row.League,
			TransferURL: row.TransferURL,
		})
	}
	return out, nil
}

func (r *HistoryRepository) ReplaceEntries(ctx context.Context, entries []leaguehistory.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace league history: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.DeleteFrom("club_league_history").ToSQL()
	if err != nil {
		return fmt.Errorf("build clear league history query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear league history: %w", err)
	}

	models := make([]leagueHistoryTableModel, 0, len(entries))
	for i, e := range entries {
		models = append(models, leagueHistoryTableModel{
			ClubName:    e.ClubName,
			ClubID:      e.ClubID,
			Season:      string(e.Season),
			League:      e.League,
			TransferURL: e.TransferURL,
			Position:    int64(i),
		})
	}
	for start := 0; start < len(models); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(models))
		builder, err := qb.InsertModels("club_league_history", models[start:end])
		if err != nil {
			return fmt.Errorf("build insert league history query: %w", err)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert league history query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert league history rows=%d: %w", end-start, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace league history tx: %w", err)
	}
	return nil
}
