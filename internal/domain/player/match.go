package player

import (
	"strings"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

type NextValueSource string

const (
	NextFromHistory NextValueSource = "history"
	NextFromCurrent NextValueSource = "current"
)

// ValueMatch is the outcome of matching one transfer record to history.
type ValueMatch struct {
	Entry      HistoryEntry
	AtTransfer float64
	// NextSeason is nil when neither a later entry nor a positive current
	// value exists.
	NextSeason *float64
	NextSource NextValueSource
	// Ambiguous is set when several entries shared the season.
	Ambiguous bool
}

// MatchMarketValue picks the history entry for a record of recordSeason that
// left originClub. Candidates share the season exactly; with several, the
// first whose match name contains or is contained in the origin's match name
// wins, else the last candidate. ok is false without candidates.
func MatchMarketValue(history []HistoryEntry, recordSeason season.Label, originClub string, currentValue float64) (ValueMatch, bool) {
	candidates := make([]HistoryEntry, 0, 2)
	for _, h := range history {
		if h.Season == recordSeason {
			candidates = append(candidates, h)
		}
	}
	if len(candidates) == 0 {
		return ValueMatch{}, false
	}

	m := ValueMatch{Ambiguous: len(candidates) > 1}
	if len(candidates) == 1 {
		m.Entry = candidates[0]
	} else {
		m.Entry = candidates[len(candidates)-1]
		origin := MatchName(originClub)
		for _, c := range candidates {
			if strings.Contains(origin, c.OldClubNorm) || strings.Contains(c.OldClubNorm, origin) {
				m.Entry = c
				break
			}
		}
	}
	m.AtTransfer = m.Entry.MarketValue

	if next, ok := nextEntry(history, m.Entry.StartYear); ok {
		v := next.MarketValue
		m.NextSeason, m.NextSource = &v, NextFromHistory
	} else if currentValue > 0 {
		v := currentValue
		m.NextSeason, m.NextSource = &v, NextFromCurrent
	}
	return m, true
}

// nextEntry returns the entry with the smallest start year above after. On a
// tie the later entry in scrape order wins, which on a newest-first page is
// the earlier move of that season.
func nextEntry(history []HistoryEntry, after int) (HistoryEntry, bool) {
	var (
		best  HistoryEntry
		found bool
	)
	for _, h := range history {
		if h.StartYear <= after {
			continue
		}
		if !found || h.StartYear <= best.StartYear {
			best, found = h, true
		}
	}
	return best, found
}
