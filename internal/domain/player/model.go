package player

import (
	"strings"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

// HistoryEntry is one row of a player's transfer history as scraped, newest
// first. It is never persisted.
type HistoryEntry struct {
	Season      season.Label
	StartYear   int
	MarketValue float64
	OldClubRaw  string
	OldClubNorm string
}

func NewHistoryEntry(seasonText string, marketValue float64, oldClub string) HistoryEntry {
	seasonText = strings.TrimSpace(seasonText)
	oldClub = strings.TrimSpace(oldClub)
	if oldClub == "" {
		oldClub = "Unknown"
	}
	return HistoryEntry{
		Season:      season.Label(seasonText),
		StartYear:   season.StartYearOf(seasonText),
		MarketValue: marketValue,
		OldClubRaw:  oldClub,
		OldClubNorm: MatchName(oldClub),
	}
}

// Profile is what a player page yields. Nil fields were absent on the page.
type Profile struct {
	ID                 int64
	Name               string
	DateOfBirth        *string
	Citizenship        *string
	CurrentMarketValue float64
	History            []HistoryEntry
}

// HasBio reports whether the page carried a birth date or citizenship.
func (p Profile) HasBio() bool {
	return p.DateOfBirth != nil || p.Citizenship != nil
}

// matchNoise are removed, in this order, as plain substrings. Removing "fc"
// before "afc" is part of the behavior historical matches depend on.
var matchNoise = []string{
	"fc", "fk", "cf", "csm", "acsm", "afc", "sc",
	"1948", "1923", "osk",
	"bucuresti", "constanta", "cluj",
	"univ.", "universitatea",
}

// MatchName is the coarse club-name key used when comparing a history entry
// with a record's origin club.
func MatchName(name string) string {
	n := strings.ToLower(name)
	for _, token := range matchNoise {
		n = strings.ReplaceAll(n, token, "")
	}
	return strings.TrimSpace(n)
}
