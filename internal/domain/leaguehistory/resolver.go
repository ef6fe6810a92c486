package leaguehistory

import (
	"strings"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

type lookupKey struct {
	club   string
	season season.Label
}

// Resolver answers which league a canonical club played in for one season.
// Lookups are exact on (name, season); adjacent seasons are never consulted.
type Resolver struct {
	leagues map[lookupKey]string
}

// NewResolver indexes entries. When one (club, season) appears in several
// tables, the first entry wins.
func NewResolver(entries []Entry) *Resolver {
	leagues := make(map[lookupKey]string, len(entries))
	for _, e := range entries {
		k := lookupKey{club: strings.TrimSpace(e.ClubName), season: season.Label(strings.TrimSpace(string(e.Season)))}
		league := strings.TrimSpace(e.League)
		if k.club == "" || league == "" {
			continue
		}
		if _, exists := leagues[k]; !exists {
			leagues[k] = league
		}
	}
	return &Resolver{leagues: leagues}
}

// League returns the league of canonicalClub in s, or Unresolved.
func (r *Resolver) League(canonicalClub string, s season.Label) string {
	if r == nil {
		return Unresolved
	}
	if league, ok := r.leagues[lookupKey{club: canonicalClub, season: s}]; ok {
		return league
	}
	return Unresolved
}

func (r *Resolver) Len() int {
	if r == nil {
		return 0
	}
	return len(r.leagues)
}
