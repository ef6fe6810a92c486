package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
)

type TransferRepository struct {
	mu      sync.RWMutex
	records []transfer.Record
	index   map[transfer.Key]int
}

func NewTransferRepository(records []transfer.Record) *TransferRepository {
	r := &TransferRepository{}
	r.reset(records)
	return r
}

func (r *TransferRepository) reset(records []transfer.Record) {
	r.records = make([]transfer.Record, 0, len(records))
	r.index = make(map[transfer.Key]int, len(records))
	for _, rec := range records {
		r.put(rec)
	}
}

func (r *TransferRepository) put(rec transfer.Record) {
	k := rec.Key()
	if i, ok := r.index[k]; ok {
		r.records[i] = rec
		return
	}
	r.index[k] = len(r.records)
	r.records = append(r.records, rec)
}

func (r *TransferRepository) ListRecords(_ context.Context) ([]transfer.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]transfer.Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *TransferRepository) ReplaceRecords(_ context.Context, records []transfer.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reset(records)
	return nil
}

func (r *TransferRepository) UpsertRecords(_ context.Context, records []transfer.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		r.put(rec)
	}
	return nil
}
