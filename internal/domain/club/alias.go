package club

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrAliasConflict = errors.New("conflicting alias")

// AliasTable is an immutable variant -> canonical lookup. Build a new table
// to apply curation changes.
type AliasTable struct {
	byVariant map[string]string
}

// NewAliasTable validates aliases: a variant may appear more than once only
// with the same canonical name, and a canonical name that is itself listed
// as a variant must map to itself.
func NewAliasTable(aliases []Alias) (*AliasTable, error) {
	byVariant := make(map[string]string, len(aliases))
	for _, a := range aliases {
		variant := strings.TrimSpace(a.Variant)
		standard := strings.TrimSpace(a.Standard)
		if variant == "" || standard == "" {
			return nil, fmt.Errorf("%w: blank entry %q -> %q", ErrAliasConflict, a.Variant, a.Standard)
		}
		if prev, ok := byVariant[variant]; ok && prev != standard {
			return nil, fmt.Errorf("%w: %q maps to both %q and %q", ErrAliasConflict, variant, prev, standard)
		}
		byVariant[variant] = standard
	}
	for variant, standard := range byVariant {
		if next, ok := byVariant[standard]; ok && next != standard {
			return nil, fmt.Errorf("%w: %q -> %q -> %q chains", ErrAliasConflict, variant, standard, next)
		}
	}
	return &AliasTable{byVariant: byVariant}, nil
}

// MustAliasTable is NewAliasTable for static seed data.
func MustAliasTable(aliases []Alias) *AliasTable {
	t, err := NewAliasTable(aliases)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *AliasTable) Lookup(variant string) (string, bool) {
	if t == nil {
		return "", false
	}
	s, ok := t.byVariant[variant]
	return s, ok
}

func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byVariant)
}

// Aliases returns the table sorted by variant.
func (t *AliasTable) Aliases() []Alias {
	if t == nil {
		return nil
	}
	out := make([]Alias, 0, len(t.byVariant))
	for v, s := range t.byVariant {
		out = append(out, Alias{Variant: v, Standard: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Variant < out[j].Variant })
	return out
}

// Normalizer canonicalizes scraped club names by exact alias lookup.
type Normalizer struct {
	table *AliasTable
}

func NewNormalizer(table *AliasTable) *Normalizer {
	return &Normalizer{table: table}
}

// Normalize trims raw and maps it through the alias table. Unmapped names
// are returned as they are; blank input yields UnknownName.
func (n *Normalizer) Normalize(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return UnknownName
	}
	if n == nil {
		return name
	}
	if standard, ok := n.table.Lookup(name); ok {
		return standard
	}
	return name
}
