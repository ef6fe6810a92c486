package club

import "context"

type AliasRepository interface {
	ListAliases(ctx context.Context) ([]Alias, error)
	ReplaceAliases(ctx context.Context, aliases []Alias) error
}
