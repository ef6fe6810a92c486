package csvstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

var transferColumns = []string{
	"TM_Player_ID", "Player_Name", "Season",
	"Origin_Club", "Origin_Club_ID", "Origin_League",
	"Destination_Club", "Destination_Club_ID", "Destination_League",
	"Fee_Raw", "Fee_Est_M", "Transfer_Type",
	"Date_of_Birth", "Citizenship",
	"Market_Value_At_Transfer", "Market_Value_Next_Season",
	"Origin_Country", "Destination_Country",
}

// TransferRepository stores the base table in one CSV file. Rows whose
// identifiers cannot be parsed are skipped with a warning when listing and
// carried through upserts untouched.
type TransferRepository struct {
	path   string
	logger *logging.Logger
	mu     sync.Mutex
}

func NewTransferRepository(path string, logger *logging.Logger) *TransferRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &TransferRepository{path: path, logger: logger}
}

func (r *TransferRepository) ListRecords(ctx context.Context) ([]transfer.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read(ctx)
}

func (r *TransferRepository) ReplaceRecords(_ context.Context, records []transfer.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.write(records)
}

// storedRow is one line of the file: either a decoded record or the raw
// cells of a row that could not be decoded.
type storedRow struct {
	rec transfer.Record
	raw []string
}

// UpsertRecords rewrites matching rows in place and appends new keys at the
// end, keeping the file order stable across checkpoints. Rows that cannot be
// decoded are written back as they were read.
func (r *TransferRepository) UpsertRecords(ctx context.Context, records []transfer.Record) error {
	if len(records) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.readRows(ctx)
	if err != nil {
		return err
	}
	index := make(map[transfer.Key]int, len(current))
	for i, row := range current {
		if row.raw != nil {
			continue
		}
		if _, dup := index[row.rec.Key()]; !dup {
			index[row.rec.Key()] = i
		}
	}
	for _, rec := range records {
		if i, ok := index[rec.Key()]; ok {
			current[i] = storedRow{rec: rec}
			continue
		}
		index[rec.Key()] = len(current)
		current = append(current, storedRow{rec: rec})
	}

	rows := make([][]string, 0, len(current))
	for _, row := range current {
		if row.raw != nil {
			rows = append(rows, row.raw)
			continue
		}
		rows = append(rows, encodeTransfer(row.rec))
	}
	if err := writeTable(r.path, transferColumns, rows); err != nil {
		return fmt.Errorf("write transfers: %w", err)
	}
	return nil
}

func (r *TransferRepository) read(ctx context.Context) ([]transfer.Record, error) {
	rows, err := r.readRows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]transfer.Record, 0, len(rows))
	for _, row := range rows {
		if row.raw == nil {
			out = append(out, row.rec)
		}
	}
	return out, nil
}

func (r *TransferRepository) readRows(ctx context.Context) ([]storedRow, error) {
	t, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	out := make([]storedRow, 0, len(t.rows))
	for n, row := range t.rows {
		rec, err := decodeTransfer(t, row)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping malformed transfer row", "file", r.path, "line", n+2, "error", err)
			out = append(out, storedRow{raw: t.project(row, transferColumns)})
			continue
		}
		out = append(out, storedRow{rec: rec})
	}
	return out, nil
}

func (r *TransferRepository) write(records []transfer.Record) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, encodeTransfer(rec))
	}
	if err := writeTable(r.path, transferColumns, rows); err != nil {
		return fmt.Errorf("write transfers: %w", err)
	}
	return nil
}

func encodeTransfer(r transfer.Record) []string {
	return []string{
		formatID(r.PlayerID), r.PlayerName, string(r.Season),
		r.Origin.Club, formatID(r.Origin.ClubID), r.Origin.League,
		r.Destination.Club, formatID(r.Destination.ClubID), r.Destination.League,
		r.FeeRaw, formatFloat(r.FeeEstM), string(r.Type),
		formatOptionalString(r.DateOfBirth), formatOptionalString(r.Citizenship),
		formatOptionalFloat(r.MarketValueAtTransfer), formatOptionalFloat(r.MarketValueNextSeason),
		r.Origin.Country, r.Destination.Country,
	}
}

func decodeTransfer(t table, row []string) (transfer.Record, error) {
	var (
		rec transfer.Record
		err error
	)
	if rec.PlayerID, err = transfer.ParseID(t.get(row, "TM_Player_ID")); err != nil {
		return rec, err
	}
	if rec.Origin.ClubID, err = transfer.ParseID(t.get(row, "Origin_Club_ID")); err != nil {
		return rec, err
	}
	if rec.Destination.ClubID, err = transfer.ParseID(t.get(row, "Destination_Club_ID")); err != nil {
		return rec, err
	}

	rec.PlayerName = t.get(row, "Player_Name")
	rec.Season = season.Label(t.get(row, "Season"))
	rec.Origin.Club = t.get(row, "Origin_Club")
	rec.Origin.League = t.get(row, "Origin_League")
	rec.Origin.Country = t.get(row, "Origin_Country")
	rec.Destination.Club = t.get(row, "Destination_Club")
	rec.Destination.League = t.get(row, "Destination_League")
	rec.Destination.Country = t.get(row, "Destination_Country")
	rec.FeeRaw = t.get(row, "Fee_Raw")
	rec.Type = transfer.Type(t.get(row, "Transfer_Type"))
	rec.DateOfBirth = parseOptionalString(t.get(row, "Date_of_Birth"))
	rec.Citizenship = parseOptionalString(t.get(row, "Citizenship"))

	if fee, ferr := parseOptionalFloat(t.get(row, "Fee_Est_M")); ferr != nil {
		return rec, fmt.Errorf("Fee_Est_M: %w", ferr)
	} else if fee != nil {
		rec.FeeEstM = *fee
	}
	if rec.MarketValueAtTransfer, err = parseOptionalFloat(t.get(row, "Market_Value_At_Transfer")); err != nil {
		return rec, fmt.Errorf("Market_Value_At_Transfer: %w", err)
	}
	if rec.MarketValueNextSeason, err = parseOptionalFloat(t.get(row, "Market_Value_Next_Season")); err != nil {
		return rec, fmt.Errorf("Market_Value_Next_Season: %w", err)
	}
	return rec, nil
}
