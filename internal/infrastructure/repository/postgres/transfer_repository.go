package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	qb "github.com/riskibarqy/ro-transfer-hub/internal/platform/querybuilder"
)

// upsertBatchSize keeps each statement well below the 65535 bind limit.
const upsertBatchSize = 500

type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) ListRecords(ctx context.Context) ([]transfer.Record, error) {
	query, args, err := qb.Select("*").From("transfers").OrderBy("position", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transfers query: %w", err)
	}

	var rows []transferReadModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select transfers: %w", err)
	}

	out := make([]transfer.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, transferFromRow(row.transferTableModel))
	}
	return out, nil
}

func (r *TransferRepository) ReplaceRecords(ctx context.Context, records []transfer.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace transfers: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.DeleteFrom("transfers").ToSQL()
	if err != nil {
		return fmt.Errorf("build clear transfers query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear transfers: %w", err)
	}
	if err := upsertTransfers(ctx, tx, records, 0); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace transfers tx: %w", err)
	}
	return nil
}

// UpsertRecords writes records by record_key. Existing rows keep their
// position; new rows go after the current last one.
func (r *TransferRepository) UpsertRecords(ctx context.Context, records []transfer.Record) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert transfers: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var last sql.NullInt64
	if err := tx.GetContext(ctx, &last, `SELECT MAX(position) FROM transfers`); err != nil {
		return fmt.Errorf("read last transfer position: %w", err)
	}
	if err := upsertTransfers(ctx, tx, records, last.Int64+1); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert transfers tx: %w", err)
	}
	return nil
}

func upsertTransfers(ctx context.Context, tx *sqlx.Tx, records []transfer.Record, firstPosition int64) error {
	models := make([]transferTableModel, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		m := transferToRow(rec, firstPosition+int64(i))
		if _, dup := seen[m.RecordKey]; dup {
			continue
		}
		seen[m.RecordKey] = struct{}{}
		models = append(models, m)
	}

	for start := 0; start < len(models); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(models))
		builder, err := qb.InsertModels("transfers", models[start:end])
		if err != nil {
			return fmt.Errorf("build upsert transfers query: %w", err)
		}
		query, args, err := builder.
			Suffix(`ON CONFLICT (record_key) DO UPDATE SET
    player_name = EXCLUDED.player_name,
    origin_club_id = EXCLUDED.origin_club_id,
    origin_league = EXCLUDED.origin_league,
    origin_country = EXCLUDED.origin_country,
    destination_club_id = EXCLUDED.destination_club_id,
    destination_league = EXCLUDED.destination_league,
    destination_country = EXCLUDED.destination_country,
    fee_raw = EXCLUDED.fee_raw,
    fee_est_m = EXCLUDED.fee_est_m,
    transfer_type = EXCLUDED.transfer_type,
    date_of_birth = EXCLUDED.date_of_birth,
    citizenship = EXCLUDED.citizenship,
    market_value_at_transfer = EXCLUDED.market_value_at_transfer,
    market_value_next_season = EXCLUDED.market_value_next_season,
    updated_at = NOW()`).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert transfers query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert transfers rows=%d: %w", end-start, err)
		}
	}
	return nil
}

func transferToRow(r transfer.Record, position int64) transferTableModel {
	return transferTableModel{
		RecordKey:             r.Key().String(),
		PlayerID:              nullInt64(r.PlayerID),
		PlayerName:            r.PlayerName,
		Season:                string(r.Season),
		OriginClub:            r.Origin.Club,
		OriginClubID:          nullInt64(r.Origin.ClubID),
		OriginLeague:          r.Origin.League,
		OriginCountry:         r.Origin.Country,
		DestinationClub:       r.Destination.Club,
		DestinationClubID:     nullInt64(r.Destination.ClubID),
		DestinationLeague:     r.Destination.League,
		DestinationCountry:    r.Destination.Country,
		FeeRaw:                r.FeeRaw,
		FeeEstM:               r.FeeEstM,
		TransferType:          string(r.Type),
		DateOfBirth:           nullString(r.DateOfBirth),
		Citizenship:           nullString(r.Citizenship),
		MarketValueAtTransfer: nullFloat64(r.MarketValueAtTransfer),
		MarketValueNextSeason: nullFloat64(r.MarketValueNextSeason),
		Position:              position,
	}
}

func transferFromRow(row transferTableModel) transfer.Record {
	return transfer.Record{
		PlayerID:              int64Ptr(row.PlayerID),
		PlayerName:            row.PlayerName,
		Season:                season.Label(row.Season),
		Origin:                transfer.Side{Club: row.OriginClub, ClubID: int64Ptr(row.OriginClubID), League: row.OriginLeague, Country: row.OriginCountry},
		Destination:           transfer.Side{Club: row.DestinationClub, ClubID: int64Ptr(row.DestinationClubID), League: row.DestinationLeague, Country: row.DestinationCountry},
		FeeRaw:                row.FeeRaw,
		FeeEstM:               row.FeeEstM,
		Type:                  transfer.Type(row.TransferType),
		DateOfBirth:           stringPtr(row.DateOfBirth),
		Citizenship:           stringPtr(row.Citizenship),
		MarketValueAtTransfer: float64Ptr(row.MarketValueAtTransfer),
		MarketValueNextSeason: float64Ptr(row.MarketValueNextSeason),
	}
}
