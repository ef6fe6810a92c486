package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
)

// excludedLeagues never reach the visualization layer.
var excludedLeagues = map[string]struct{}{
	"TBD": {}, "Unknown": {}, "nan": {}, "Retired": {}, "Without Club": {}, "Disqualification": {},
}

type AnalyticsConfig struct {
	HomeCountry  string
	TopLeague    string
	SecondLeague string
}

// AnalyticsService derives the read-only views the dashboard consumes.
// Serve it from a cached repository; every query lists the whole table.
type AnalyticsService struct {
	transfers  transfer.Repository
	classifier transfer.MigrationClassifier
	cfg        AnalyticsConfig
}

func NewAnalyticsService(transfers transfer.Repository, cfg AnalyticsConfig) *AnalyticsService {
	return &AnalyticsService{
		transfers:  transfers,
		classifier: transfer.NewMigrationClassifier(cfg.HomeCountry),
		cfg:        cfg,
	}
}

// EnrichedRecord is a record plus the fields computed at query time.
type EnrichedRecord struct {
	transfer.Record
	Age              *int
	Migration        transfer.Migration
	UIType           string
	OriginLabel      string
	DestinationLabel string
}

type DatasetFilter struct {
	Seasons    []season.Label
	UITypes    []string
	Migrations []transfer.Migration
	// MinAge and MaxAge drop rows without a known age once either is set.
	MinAge int
	MaxAge int
	// MinFee only constrains rows shown as "Fee".
	MinFee            float64
	IncludeUnresolved bool
}

// Visible reports whether a record passes the consumer filter: both leagues
// and both countries resolved and not a status pseudo-league.
func Visible(r transfer.Record) bool {
	for _, side := range []transfer.Side{r.Origin, r.Destination} {
		if !side.LeagueResolved() || !side.CountryResolved() {
			return false
		}
		if _, bad := excludedLeagues[strings.TrimSpace(side.League)]; bad {
			return false
		}
	}
	return true
}

func (s *AnalyticsService) enrich(r transfer.Record) EnrichedRecord {
	e := EnrichedRecord{
		Record:           r,
		Migration:        s.classifier.ClassifyRecord(r),
		UIType:           transfer.UIType(r),
		OriginLabel:      r.Origin.Country + ": " + r.Origin.League,
		DestinationLabel: r.Destination.Country + ": " + r.Destination.League,
	}
	if age, ok := transfer.AgeAtTransfer(r.DateOfBirth, r.Season); ok {
		e.Age = &age
	}
	return e
}

// Dataset returns the visible records with derived fields, filtered.
func (s *AnalyticsService) Dataset(ctx context.Context, f DatasetFilter) ([]EnrichedRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Dataset")
	defer span.End()

	records, err := s.transfers.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	seasons := season.NewSet(f.Seasons...)
	types := stringSet(f.UITypes)
	migrations := make(map[transfer.Migration]struct{}, len(f.Migrations))
	for _, m := range f.Migrations {
		migrations[m] = struct{}{}
	}

	out := make([]EnrichedRecord, 0, len(records))
	for _, r := range records {
		if !f.IncludeUnresolved && !Visible(r) {
			continue
		}
		if !seasons.Contains(r.Season) {
			continue
		}
		e := s.enrich(r)
		if len(types) > 0 {
			if _, ok := types[e.UIType]; !ok {
				continue
			}
		}
		if len(migrations) > 0 {
			if _, ok := migrations[e.Migration]; !ok {
				continue
			}
		}
		if f.MinAge > 0 || f.MaxAge > 0 {
			if e.Age == nil || (f.MinAge > 0 && *e.Age < f.MinAge) || (f.MaxAge > 0 && *e.Age > f.MaxAge) {
				continue
			}
		}
		if f.MinFee > 0 && e.UIType == "Fee" && r.FeeEstM < f.MinFee {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type FlowView string

const (
	FlowImports  FlowView = "imports"
	FlowExports  FlowView = "exports"
	FlowInternal FlowView = "internal"
)

// Flow is one "Country: League" to "Country: League" link.
type Flow struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

// Flows aggregates visible moves into labeled links with at least minCount
// moves. Imports cover foreign imports and repatriations into the home
// country, exports moves out of it, and internal domestic moves between
// different leagues.
func (s *AnalyticsService) Flows(ctx context.Context, view FlowView, minCount int, seasons []season.Label) ([]Flow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Flows")
	defer span.End()

	rows, err := s.Dataset(ctx, DatasetFilter{Seasons: seasons})
	if err != nil {
		return nil, err
	}

	type link struct{ from, to string }
	counts := make(map[link]int)
	for _, e := range rows {
		if !s.inView(view, e) {
			continue
		}
		counts[link{e.OriginLabel, e.DestinationLabel}]++
	}

	out := make([]Flow, 0, len(counts))
	for l, n := range counts {
		if n >= minCount {
			out = append(out, Flow{Origin: l.from, Destination: l.to, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Origin != out[j].Origin {
			return out[i].Origin < out[j].Origin
		}
		return out[i].Destination < out[j].Destination
	})
	return out, nil
}

func (s *AnalyticsService) inView(view FlowView, e EnrichedRecord) bool {
	home := s.cfg.HomeCountry
	switch view {
	case FlowImports:
		return (e.Migration == transfer.MigrationForeignImport || e.Migration == transfer.MigrationRepatriation) &&
			e.Origin.Country != home && e.Destination.Country == home
	case FlowExports:
		return e.Migration == transfer.MigrationExport
	case FlowInternal:
		return e.Migration == transfer.MigrationDomestic && e.Origin.League != e.Destination.League
	default:
		return false
	}
}

type NetworkScope string

const (
	ScopeTopLeague    NetworkScope = "superliga"
	ScopeTopAndSecond NetworkScope = "superliga-liga2"
	ScopeDomestic     NetworkScope = "domestic"
	ScopeAll          NetworkScope = "all"
)

// Edge is a weighted club-to-club link.
type Edge struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Weight      int    `json:"weight"`
}

// Network groups visible moves by (origin club, destination club) within a
// scope, keeping edges of at least minWeight. A non-blank focusClub keeps
// only edges touching that club.
func (s *AnalyticsService) Network(ctx context.Context, scope NetworkScope, minWeight int, focusClub string) ([]Edge, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Network")
	defer span.End()

	rows, err := s.Dataset(ctx, DatasetFilter{})
	if err != nil {
		return nil, err
	}

	type pair struct{ from, to string }
	weights := make(map[pair]int)
	for _, e := range rows {
		if !s.inScope(scope, e.Record) {
			continue
		}
		weights[pair{e.Origin.Club, e.Destination.Club}]++
	}

	focusClub = strings.TrimSpace(focusClub)
	out := make([]Edge, 0, len(weights))
	for p, w := range weights {
		if w < minWeight {
			continue
		}
		if focusClub != "" && p.from != focusClub && p.to != focusClub {
			continue
		}
		out = append(out, Edge{Origin: p.from, Destination: p.to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		if out[i].Origin != out[j].Origin {
			return out[i].Origin < out[j].Origin
		}
		return out[i].Destination < out[j].Destination
	})
	return out, nil
}

func (s *AnalyticsService) inScope(scope NetworkScope, r transfer.Record) bool {
	top, second, home := s.cfg.TopLeague, s.cfg.SecondLeague, s.cfg.HomeCountry
	switch scope {
	case ScopeTopLeague:
		return r.Origin.League == top && r.Destination.League == top && r.Origin.Country == home
	case ScopeTopAndSecond:
		return (r.Origin.League == top && r.Destination.League == second) ||
			(r.Origin.League == second && r.Destination.League == top)
	case ScopeDomestic:
		return r.Origin.Country == home && r.Destination.Country == home
	case ScopeAll:
		return true
	default:
		return false
	}
}

// Coverage reports how much of the base table is resolved and enriched.
type Coverage struct {
	Records             int `json:"records"`
	Visible             int `json:"visible"`
	UnresolvedLeagues   int `json:"unresolved_leagues"`
	UnresolvedCountries int `json:"unresolved_countries"`
	WithBirthDate       int `json:"with_birth_date"`
	WithCitizenship     int `json:"with_citizenship"`
	WithValueAtTransfer int `json:"with_value_at_transfer"`
	WithValueNextSeason int `json:"with_value_next_season"`
	WithoutPlayerID     int `json:"without_player_id"`
}

func (s *AnalyticsService) Coverage(ctx context.Context) (Coverage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Coverage")
	defer span.End()

	records, err := s.transfers.ListRecords(ctx)
	if err != nil {
		return Coverage{}, fmt.Errorf("list records: %w", err)
	}
	c := Coverage{Records: len(records)}
	for _, r := range records {
		if Visible(r) {
			c.Visible++
		}
		for _, side := range []transfer.Side{r.Origin, r.Destination} {
			if !side.LeagueResolved() {
				c.UnresolvedLeagues++
			}
			if !side.CountryResolved() {
				c.UnresolvedCountries++
			}
		}
		if r.DateOfBirth != nil {
			c.WithBirthDate++
		}
		if r.Citizenship != nil {
			c.WithCitizenship++
		}
		if r.MarketValueAtTransfer != nil {
			c.WithValueAtTransfer++
		}
		if r.MarketValueNextSeason != nil {
			c.WithValueNextSeason++
		}
		if !r.HasPlayerID() {
			c.WithoutPlayerID++
		}
	}
	return c, nil
}

func stringSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out[v] = struct{}{}
		}
	}
	return out
}
