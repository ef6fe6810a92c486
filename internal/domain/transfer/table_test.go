package transfer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

func idp(v int64) *int64 { return &v }

func seasonLabel(s string) season.Label { return season.Label(s) }

func move(pid int64, s, origin string, originID int64, dest string, destID int64) Record {
	return Record{
		PlayerID:    idp(pid),
		PlayerName:  "Player",
		Season:      season.Label(s),
		Origin:      Side{Club: origin, ClubID: idp(originID), League: UnresolvedLeague},
		Destination: Side{Club: dest, ClubID: idp(destID), League: UnresolvedLeague},
		Type:        TypePermanent,
	}
}

func TestDedupeKeepsFirst(t *testing.T) {
	t.Parallel()

	first := move(1, "21/22", "FCSB", 301, "CFR Cluj", 7769)
	first.FeeRaw = "first"
	second := first
	second.FeeRaw = "second"
	other := move(1, "22/23", "FCSB", 301, "CFR Cluj", 7769)

	got := Dedupe([]Record{first, second, other})
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].FeeRaw)
}

func TestApplyClubContextBothRoles(t *testing.T) {
	t.Parallel()

	tbl := NewTable([]Record{
		move(1, "21/22", "FCSB", 301, "Rapid", 1),
		move(2, "21/22", "Rapid", 1, "FCSB", 301),
		move(3, "22/23", "FCSB", 301, "Rapid", 1),
	})

	res := tbl.ApplyClubContext(ClubSeason{ClubID: 301, Season: "21/22"}, "Superliga", "Romania")
	assert.Equal(t, 2, res.RowsUpdated)
	assert.Empty(t, res.Conflicts)

	assert.Equal(t, "Superliga", tbl.At(0).Origin.League)
	assert.Equal(t, "Romania", tbl.At(0).Origin.Country)
	assert.Equal(t, "Superliga", tbl.At(1).Destination.League)
	assert.Equal(t, UnresolvedLeague, tbl.At(0).Destination.League)
	assert.Equal(t, UnresolvedLeague, tbl.At(2).Origin.League, "other seasons untouched")
	assert.Equal(t, 2, tbl.DirtyCount())
}

func TestApplyClubContextNeverOverwrites(t *testing.T) {
	t.Parallel()

	r := move(1, "21/22", "FCSB", 301, "Rapid", 1)
	r.Origin.League = "Liga 1"
	r.Origin.Country = "Romania"
	tbl := NewTable([]Record{r})

	res := tbl.ApplyClubContext(ClubSeason{ClubID: 301, Season: "21/22"}, "Superliga", "Romania")
	assert.Zero(t, res.RowsUpdated)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "league", res.Conflicts[0].Field)
	assert.Equal(t, "Liga 1", tbl.At(0).Origin.League)
	assert.Zero(t, tbl.DirtyCount())
}

func TestApplyClubContextPartialAndIdempotent(t *testing.T) {
	t.Parallel()

	tbl := NewTable([]Record{move(1, "21/22", "FCSB", 301, "Rapid", 1)})
	key := ClubSeason{ClubID: 301, Season: "21/22"}

	res := tbl.ApplyClubContext(key, "", "Romania")
	assert.Equal(t, 1, res.RowsUpdated)
	assert.Equal(t, UnresolvedLeague, tbl.At(0).Origin.League)

	res = tbl.ApplyClubContext(key, "Superliga", "")
	assert.Equal(t, 1, res.RowsUpdated)
	once := tbl.Records()

	res = tbl.ApplyClubContext(key, "Superliga", "Romania")
	assert.Zero(t, res.RowsUpdated)
	if diff := cmp.Diff(once, tbl.Records()); diff != "" {
		t.Fatalf("second application changed table (-once +twice):\n%s", diff)
	}
}

func TestDirtyTracking(t *testing.T) {
	t.Parallel()

	tbl := NewTable([]Record{
		move(1, "21/22", "FCSB", 301, "Rapid", 1),
		move(1, "22/23", "Rapid", 1, "Petrolul", 1044),
	})
	assert.Equal(t, []int{0, 1}, tbl.PlayerRows(1))

	changed := tbl.Update(1, func(r *Record) bool {
		dob := "14/03/2000"
		r.DateOfBirth = &dob
		return true
	})
	assert.True(t, changed)
	assert.False(t, tbl.Update(0, func(*Record) bool { return false }))

	dirty := tbl.Dirty()
	require.Len(t, dirty, 1)
	assert.Equal(t, season.Label("22/23"), dirty[0].Season)

	tbl.ClearDirty()
	assert.Empty(t, tbl.Dirty())
}

func TestLeagueConflicts(t *testing.T) {
	t.Parallel()

	a := move(1, "21/22", "FCSB", 301, "Rapid", 1)
	a.Origin.League = "Superliga"
	b := move(2, "21/22", "Rapid", 1, "FCSB", 301)
	b.Destination.League = "Liga 2"
	c := move(3, "21/22", "Rapid", 1, "Dinamo", 2)
	c.Origin.League = "Superliga"

	got := NewTable([]Record{a, b, c}).LeagueConflicts()
	want := map[ClubSeason][]string{{ClubID: 301, Season: "21/22"}: {"Liga 2", "Superliga"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("conflicts mismatch (-want +got):\n%s", diff)
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := ParseID("301")
	require.NoError(t, err)
	assert.Equal(t, int64(301), *id)

	id, err = ParseID("301.0")
	require.NoError(t, err)
	assert.Equal(t, int64(301), *id)

	for _, blank := range []string{"", " ", "nan", "None"} {
		id, err = ParseID(blank)
		require.NoError(t, err)
		assert.Nil(t, id)
	}

	_, err = ParseID("verein-301")
	assert.True(t, errors.Is(err, ErrMalformedID))
}

func TestSentinels(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "TBD", "Unknown", "nan", " TBD "} {
		assert.True(t, IsUnresolvedLeague(v), v)
	}
	assert.False(t, IsUnresolvedLeague("Superliga"))
	assert.True(t, IsUnresolvedCountry(" "))
	assert.False(t, IsUnresolvedCountry("Romania"))

	r := Record{}
	assert.True(t, r.NeedsEnrichment())
	assert.False(t, r.HasPlayerID())
	zero := int64(0)
	r.PlayerID = &zero
	assert.False(t, r.HasPlayerID())
}
