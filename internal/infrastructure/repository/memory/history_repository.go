package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
)

type HistoryRepository struct {
	mu      sync.RWMutex
	entries []leaguehistory.Entry
}

func NewHistoryRepository(entries []leaguehistory.Entry) *HistoryRepository {
	return &HistoryRepository{entries: append([]leaguehistory.Entry(nil), entries...)}
}

func (r *HistoryRepository) ListEntries(_ context.Context) ([]leaguehistory.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]leaguehistory.Entry(nil), r.entries...), nil
}

func (r *HistoryRepository) ReplaceEntries(_ context.Context, entries []leaguehistory.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]leaguehistory.Entry(nil), entries...)
	return nil
}
