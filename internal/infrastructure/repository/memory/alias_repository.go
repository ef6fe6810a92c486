package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
)

type AliasRepository struct {
	mu      sync.RWMutex
	aliases []club.Alias
}

func NewAliasRepository(aliases []club.Alias) *AliasRepository {
	return &AliasRepository{aliases: append([]club.Alias(nil), aliases...)}
}

func (r *AliasRepository) ListAliases(_ context.Context) ([]club.Alias, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]club.Alias(nil), r.aliases...), nil
}

func (r *AliasRepository) ReplaceAliases(_ context.Context, aliases []club.Alias) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.aliases = append([]club.Alias(nil), aliases...)
	return nil
}
