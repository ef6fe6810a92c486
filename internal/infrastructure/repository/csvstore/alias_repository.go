package csvstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
)

var aliasColumns = []string{"Variant_Name", "Standard_Name"}

// AliasRepository is the two-column alias table.
type AliasRepository struct {
	path string
	mu   sync.Mutex
}

func NewAliasRepository(path string) *AliasRepository {
	return &AliasRepository{path: path}
}

func (r *AliasRepository) ListAliases(_ context.Context) ([]club.Alias, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	out := make([]club.Alias, 0, len(t.rows))
	for _, row := range t.rows {
		a := club.Alias{Variant: t.get(row, "Variant_Name"), Standard: t.get(row, "Standard_Name")}
		if a.Variant == "" && a.Standard == "" {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AliasRepository) ReplaceAliases(_ context.Context, aliases []club.Alias) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([][]string, 0, len(aliases))
	for _, a := range aliases {
		rows = append(rows, []string{a.Variant, a.Standard})
	}
	if err := writeTable(r.path, aliasColumns, rows); err != nil {
		return fmt.Errorf("write aliases: %w", err)
	}
	return nil
}
