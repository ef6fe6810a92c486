package leaguehistory

import (
	"context"
	"strings"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

// Unresolved is the league value of a (club, season) with no known league.
const Unresolved = "TBD"

// Entry records that a club played in League during Season, as listed on
// that season's competition table.
type Entry struct {
	ClubName    string
	ClubID      int64
	Season      season.Label
	League      string
	TransferURL string
}

// Source is one competition whose per-season club tables feed the history.
type Source struct {
	League  string         `yaml:"league" validate:"required"`
	Code    string         `yaml:"code" validate:"required"`
	Slug    string         `yaml:"slug" validate:"required"`
	Seasons []season.Label `yaml:"seasons" validate:"required,min=1,dive,season"`
}

type Repository interface {
	ListEntries(ctx context.Context) ([]Entry, error)
	ReplaceEntries(ctx context.Context, entries []Entry) error
}

// Dedupe drops repeated (club name, season, league) rows keeping the first.
func Dedupe(entries []Entry) []Entry {
	type key struct {
		name   string
		season season.Label
		league string
	}
	seen := make(map[key]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		k := key{strings.TrimSpace(e.ClubName), e.Season, strings.TrimSpace(e.League)}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Listings returns one club listing per club id, first occurrence wins.
func Listings(entries []Entry) []club.Listing {
	seen := make(map[int64]struct{}, len(entries))
	out := make([]club.Listing, 0)
	for _, e := range entries {
		if _, dup := seen[e.ClubID]; dup {
			continue
		}
		seen[e.ClubID] = struct{}{}
		out = append(out, club.Listing{Name: e.ClubName, ID: e.ClubID, TransferURL: e.TransferURL})
	}
	return out
}

// ClubContext is what a club's season page says about where it played.
// Either field may be blank when the page lacks it.
type ClubContext struct {
	League  string
	Country string
}

func (c ClubContext) Empty() bool {
	return strings.TrimSpace(c.League) == "" && strings.TrimSpace(c.Country) == ""
}
