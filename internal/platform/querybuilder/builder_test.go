package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectWithConditions(t *testing.T) {
	q, args, err := Select("record_key", "season").
		From("transfers").
		Where(Eq("season", "21/22"), In("origin_club_id", []int64{301, 7})).
		OrderBy("record_key").
		Limit(10).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT record_key, season FROM transfers WHERE season = $1 AND origin_club_id IN ($2, $3) ORDER BY record_key LIMIT 10", q)
	assert.Equal(t, []any{"21/22", int64(301), int64(7)}, args)
}

func TestEmptyInIsFalse(t *testing.T) {
	q, args, err := Select("*").From("t").Where(In[string]("a", nil)).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t WHERE 1=0", q)
	assert.Empty(t, args)
}

func TestExprBindsInOrder(t *testing.T) {
	q, args, err := DeleteFrom("club_aliases").
		Where(Eq("source", "seed"), Expr("variant_name <> ? AND variant_name <> ?", "a", "b")).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM club_aliases WHERE source = $1 AND variant_name <> $2 AND variant_name <> $3", q)
	assert.Equal(t, []any{"seed", "a", "b"}, args)
}

type aliasRow struct {
	Variant  string `db:"variant_name"`
	Standard string `db:"standard_name"`
	ignored  string
	Skip     string `db:"-"`
}

func TestInsertModelsUpsert(t *testing.T) {
	b, err := InsertModels("club_aliases", []aliasRow{
		{Variant: "Rapid", Standard: "FC Rapid 1923"},
		{Variant: "Farul", Standard: "FCV Farul Constanta"},
	})
	require.NoError(t, err)

	q, args, err := b.OnConflictUpdate("variant_name").ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO club_aliases (variant_name, standard_name) VALUES ($1, $2), ($3, $4) ON CONFLICT (variant_name) DO UPDATE SET standard_name = EXCLUDED.standard_name", q)
	assert.Len(t, args, 4)
}

func TestInsertRowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL()
	assert.Error(t, err)
}

func TestColumnsRejectsNonStruct(t *testing.T) {
	_, err := Columns(42)
	assert.Error(t, err)
}
