package csvstore

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/review"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
)

var reviewColumns = []string{"Club_ID", "Club_Name", "Season", "Existing_Country", "Occurrences", "New_League"}

// ReviewStore is the spreadsheet handed to a human reviewer. Unparsable
// numbers read as 0 and are rejected by validation on apply.
type ReviewStore struct {
	path string
	mu   sync.Mutex
}

func NewReviewStore(path string) *ReviewStore {
	return &ReviewStore{path: path}
}

func (s *ReviewStore) WriteItems(_ context.Context, items []review.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatInt(it.ClubID, 10), it.ClubName, string(it.Season),
			it.ExistingCountry, strconv.Itoa(it.Occurrences), it.NewLeague,
		})
	}
	if err := writeTable(s.path, reviewColumns, rows); err != nil {
		return fmt.Errorf("write review report: %w", err)
	}
	return nil
}

func (s *ReviewStore) ReadItems(_ context.Context) ([]review.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := readTable(s.path)
	if err != nil {
		return nil, err
	}
	out := make([]review.Item, 0, len(t.rows))
	for _, row := range t.rows {
		var clubID int64
		if id, err := transfer.ParseID(t.get(row, "Club_ID")); err == nil && id != nil {
			clubID = *id
		}
		occurrences, _ := strconv.Atoi(t.get(row, "Occurrences"))
		newLeague := t.get(row, "New_League")
		if isMissing(newLeague) {
			newLeague = ""
		}
		out = append(out, review.Item{
			ClubID:          clubID,
			ClubName:        t.get(row, "Club_Name"),
			Season:          season.Label(t.get(row, "Season")),
			ExistingCountry: t.get(row, "Existing_Country"),
			Occurrences:     occurrences,
			NewLeague:       newLeague,
		})
	}
	return out, nil
}
