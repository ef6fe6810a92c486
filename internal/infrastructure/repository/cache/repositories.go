package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	basecache "github.com/riskibarqy/ro-transfer-hub/internal/platform/cache"
)

const recordsKey = "transfers:all"

// TransferRepository serves ListRecords from memory for up to ttl and drops
// the cached table on every write through it.
type TransferRepository struct {
	next  transfer.Repository
	cache *basecache.Store[[]transfer.Record]
}

func NewTransferRepository(next transfer.Repository, ttl time.Duration) *TransferRepository {
	return &TransferRepository{next: next, cache: basecache.NewStore[[]transfer.Record](ttl)}
}

func (r *TransferRepository) ListRecords(ctx context.Context) ([]transfer.Record, error) {
	items, err := r.cache.GetOrLoad(ctx, recordsKey, func(ctx context.Context) ([]transfer.Record, error) {
		items, err := r.next.ListRecords(ctx)
		if err != nil {
			return nil, err
		}
		return append([]transfer.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]transfer.Record(nil), items...), nil
}

func (r *TransferRepository) ReplaceRecords(ctx context.Context, records []transfer.Record) error {
	defer r.cache.Delete(recordsKey)
	return r.next.ReplaceRecords(ctx, records)
}

func (r *TransferRepository) UpsertRecords(ctx context.Context, records []transfer.Record) error {
	defer r.cache.Delete(recordsKey)
	return r.next.UpsertRecords(ctx, records)
}
