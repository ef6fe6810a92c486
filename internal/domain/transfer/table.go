package transfer

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

type Repository interface {
	ListRecords(ctx context.Context) ([]Record, error)
	// ReplaceRecords overwrites the table. Only the initial build uses it.
	ReplaceRecords(ctx context.Context, records []Record) error
	// UpsertRecords writes records by Key, leaving other rows untouched.
	UpsertRecords(ctx context.Context, records []Record) error
}

// Dedupe keeps the first record of every Key.
func Dedupe(records []Record) []Record {
	seen := make(map[Key]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		k := r.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// ClubSeason keys the league context of one club in one season.
type ClubSeason struct {
	ClubID int64
	Season season.Label
}

type sideRef struct {
	row  int
	role Role
}

// Conflict is an incoming value that disagreed with an already resolved one
// and was therefore not applied.
type Conflict struct {
	Key      Key
	Role     Role
	Field    string
	Existing string
	Incoming string
}

// ApplyResult summarizes one context application.
type ApplyResult struct {
	RowsUpdated int
	Conflicts   []Conflict
}

// Table is the in-memory working copy of the base table. It is not safe for
// concurrent use; passes funnel every mutation through one goroutine.
type Table struct {
	records  []Record
	byPlayer map[int64][]int
	byClub   map[ClubSeason][]sideRef
	dirty    map[int]struct{}
}

func NewTable(records []Record) *Table {
	t := &Table{
		records:  Dedupe(records),
		byPlayer: make(map[int64][]int),
		byClub:   make(map[ClubSeason][]sideRef),
		dirty:    make(map[int]struct{}),
	}
	for i, r := range t.records {
		if r.HasPlayerID() {
			t.byPlayer[*r.PlayerID] = append(t.byPlayer[*r.PlayerID], i)
		}
		for _, role := range Roles {
			side := t.records[i].Side(role)
			if side.ClubID == nil {
				continue
			}
			k := ClubSeason{ClubID: *side.ClubID, Season: r.Season}
			t.byClub[k] = append(t.byClub[k], sideRef{row: i, role: role})
		}
	}
	return t
}

func (t *Table) Len() int { return len(t.records) }

// Records returns a copy of every row in table order.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

func (t *Table) At(i int) Record { return t.records[i] }

// PlayerRows returns the row indexes of a player in table order.
func (t *Table) PlayerRows(playerID int64) []int {
	return append([]int(nil), t.byPlayer[playerID]...)
}

// Update applies fn to row i and marks it dirty when fn reports a change.
func (t *Table) Update(i int, fn func(r *Record) bool) bool {
	if fn(&t.records[i]) {
		t.dirty[i] = struct{}{}
		return true
	}
	return false
}

// ApplyClubContext fills league and country for every side that references
// the club in the season, in both roles. Only unresolved values are filled;
// a differing resolved value is reported as a conflict. Blank inputs are
// skipped so league and country apply independently.
func (t *Table) ApplyClubContext(key ClubSeason, league, country string) ApplyResult {
	league = strings.TrimSpace(league)
	country = strings.TrimSpace(country)

	var res ApplyResult
	for _, ref := range t.byClub[key] {
		rec := &t.records[ref.row]
		side := rec.Side(ref.role)
		changed := false

		if league != "" && !IsUnresolvedLeague(league) {
			switch {
			case !side.LeagueResolved():
				side.League = league
				changed = true
			case side.League != league:
				res.Conflicts = append(res.Conflicts, Conflict{Key: rec.Key(), Role: ref.role, Field: "league", Existing: side.League, Incoming: league})
			}
		}
		if country != "" && !IsUnresolvedCountry(country) {
			switch {
			case !side.CountryResolved():
				side.Country = country
				changed = true
			case side.Country != country:
				res.Conflicts = append(res.Conflicts, Conflict{Key: rec.Key(), Role: ref.role, Field: "country", Existing: side.Country, Incoming: country})
			}
		}
		if changed {
			t.dirty[ref.row] = struct{}{}
			res.RowsUpdated++
		}
	}
	return res
}

// ClubSides visits every side that carries a club id, origins first then
// destinations, each in table order.
func (t *Table) ClubSides(fn func(row int, role Role, side Side)) {
	for _, role := range Roles {
		for i := range t.records {
			side := *t.records[i].Side(role)
			if side.ClubID != nil {
				fn(i, role, side)
			}
		}
	}
}

// LeagueConflicts maps each club season whose sides carry more than one
// distinct resolved league to those leagues, sorted.
func (t *Table) LeagueConflicts() map[ClubSeason][]string {
	out := make(map[ClubSeason][]string)
	for key, refs := range t.byClub {
		distinct := map[string]struct{}{}
		for _, ref := range refs {
			side := t.records[ref.row].Side(ref.role)
			if side.LeagueResolved() {
				distinct[side.League] = struct{}{}
			}
		}
		if len(distinct) < 2 {
			continue
		}
		leagues := make([]string, 0, len(distinct))
		for l := range distinct {
			leagues = append(leagues, l)
		}
		sort.Strings(leagues)
		out[key] = leagues
	}
	return out
}

// Dirty returns the rows changed since the last ClearDirty, in table order.
func (t *Table) Dirty() []Record {
	idx := make([]int, 0, len(t.dirty))
	for i := range t.dirty {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	out := make([]Record, 0, len(idx))
	for _, i := range idx {
		out = append(out, t.records[i])
	}
	return out
}

func (t *Table) DirtyCount() int { return len(t.dirty) }

func (t *Table) ClearDirty() {
	clear(t.dirty)
}
