package csvstore

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
)

var historyColumns = []string{"Club_Name", "Club_ID", "Season", "League", "Transfer_URL"}

type HistoryRepository struct {
	path string
	mu   sync.Mutex
}

func NewHistoryRepository(path string) *HistoryRepository {
	return &HistoryRepository{path: path}
}

// ListEntries returns the stored history. Rows without a parsable club id
// keep id 0 so name lookups still work.
func (r *HistoryRepository) ListEntries(_ context.Context) ([]leaguehistory.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	out := make([]leaguehistory.Entry, 0, len(t.rows))
	for _, row := range t.rows {
		e := leaguehistory.Entry{
			ClubName:    t.get(row, "Club_Name"),
			Season:      season.Label(t.get(row, "Season")),
			League:      t.get(row, "League"),
			TransferURL: t.get(row, "Transfer_URL"),
		}
		if id, err := transfer.ParseID(t.get(row, "Club_ID")); err == nil && id != nil {
			e.ClubID = *id
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *HistoryRepository) ReplaceEntries(_ context.Context, entries []leaguehistory.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.ClubName, strconv.FormatInt(e.ClubID, 10), string(e.Season), e.League, e.TransferURL})
	}
	if err := writeTable(r.path, historyColumns, rows); err != nil {
		return fmt.Errorf("write league history: %w", err)
	}
	return nil
}
