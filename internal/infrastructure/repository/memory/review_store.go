package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/review"
)

type ReviewStore struct {
	mu    sync.RWMutex
	items []review.Item
}

func NewReviewStore(items []review.Item) *ReviewStore {
	return &ReviewStore{items: append([]review.Item(nil), items...)}
}

func (s *ReviewStore) WriteItems(_ context.Context, items []review.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]review.Item(nil), items...)
	return nil
}

func (s *ReviewStore) ReadItems(_ context.Context) ([]review.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]review.Item(nil), s.items...), nil
}
