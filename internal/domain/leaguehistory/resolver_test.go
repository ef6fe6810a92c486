package leaguehistory

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
)

func sampleEntries() []Entry {
	return []Entry{
		{ClubName: "FCSB", ClubID: 301, Season: "21/22", League: "Superliga", TransferURL: "https://tm/fcsb/alletransfers/verein/301"},
		{ClubName: "FCSB", ClubID: 301, Season: "22/23", League: "Superliga", TransferURL: "https://tm/fcsb/alletransfers/verein/301"},
		{ClubName: "Petrolul Ploiesti", ClubID: 1044, Season: "21/22", League: "Liga 2"},
		{ClubName: "Petrolul Ploiesti", ClubID: 1044, Season: "22/23", League: "Superliga"},
		{ClubName: " FC Hermannstadt ", ClubID: 58049, Season: "21/22", League: " Superliga "},
	}
}

func TestResolverExactPair(t *testing.T) {
	t.Parallel()

	r := NewResolver(sampleEntries())
	for _, e := range sampleEntries() {
		got := r.League(strings.TrimSpace(e.ClubName), e.Season)
		assert.NotEqual(t, Unresolved, got, "%s %s", e.ClubName, e.Season)
	}

	assert.Equal(t, "Liga 2", r.League("Petrolul Ploiesti", "21/22"))
	assert.Equal(t, "Superliga", r.League("Petrolul Ploiesti", "22/23"))
	assert.Equal(t, "Superliga", r.League("FC Hermannstadt", "21/22"))
}

func TestResolverDoesNotInterpolateSeasons(t *testing.T) {
	t.Parallel()

	r := NewResolver(sampleEntries())
	assert.Equal(t, Unresolved, r.League("FCSB", "23/24"))
	assert.Equal(t, Unresolved, r.League("FCSB", "20/21"))
	assert.Equal(t, Unresolved, r.League("Steaua", "21/22"))
}

func TestNilResolver(t *testing.T) {
	t.Parallel()

	var r *Resolver
	assert.Equal(t, Unresolved, r.League("FCSB", "21/22"))
	assert.Zero(t, r.Len())
}

func TestDedupeAndListings(t *testing.T) {
	t.Parallel()

	entries := append(sampleEntries(), sampleEntries()[0])
	deduped := Dedupe(entries)
	assert.Len(t, deduped, len(sampleEntries()))

	want := []club.Listing{
		{Name: "FCSB", ID: 301, TransferURL: "https://tm/fcsb/alletransfers/verein/301"},
		{Name: "Petrolul Ploiesti", ID: 1044},
		{Name: " FC Hermannstadt ", ID: 58049},
	}
	if diff := cmp.Diff(want, Listings(deduped)); diff != "" {
		t.Fatalf("listings mismatch (-want +got):\n%s", diff)
	}
}
