package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/id"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

type BuildConfig struct {
	Seasons []season.Label
	Workers int
}

// BuildService produces the base table from every listed club's transfer
// page and re-runs the league lookup over it.
type BuildService struct {
	aliases   *AliasService
	history   leaguehistory.Repository
	transfers transfer.Repository
	source    ClubTransferSource
	ids       id.Generator
	logger    *logging.Logger
	cfg       BuildConfig
}

func NewBuildService(
	aliases *AliasService,
	history leaguehistory.Repository,
	transfers transfer.Repository,
	source ClubTransferSource,
	ids id.Generator,
	logger *logging.Logger,
	cfg BuildConfig,
) *BuildService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BuildService{
		aliases:   aliases,
		history:   history,
		transfers: transfers,
		source:    source,
		ids:       ids,
		logger:    logger.With("pass", "build"),
		cfg:       cfg,
	}
}

type clubHarvest struct {
	listing club.Listing
	moves   []transfer.RawMove
	err     error
}

// Build scrapes every listed club and replaces the base table with the
// deduplicated records. A club whose page fails is skipped.
func (s *BuildService) Build(ctx context.Context) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BuildService.Build")
	defer span.End()

	summary := newRunSummary(s.ids, "build")
	builder, listings, err := s.prepare(ctx)
	if err != nil {
		return summary, err
	}
	summary.Tasks = len(listings)
	span.SetAttributes(attribute.Int("clubs", len(listings)))

	mapper := iter.Mapper[club.Listing, clubHarvest]{MaxGoroutines: workerCount(s.cfg.Workers, len(listings))}
	harvests := mapper.Map(listings, func(l *club.Listing) clubHarvest {
		if err := ctx.Err(); err != nil {
			return clubHarvest{listing: *l, err: err}
		}
		moves, err := s.source.FetchClubTransfers(ctx, *l)
		return clubHarvest{listing: *l, moves: moves, err: err}
	})

	var moves []transfer.RawMove
	for _, h := range harvests {
		if h.err != nil {
			summary.Skipped++
			s.logger.WarnContext(ctx, "club transfers unavailable", "club", h.listing.Name, "club_id", h.listing.ID, "error", h.err)
			continue
		}
		summary.Resolved++
		s.logger.InfoContext(ctx, "club transfers scraped", "club", h.listing.Name, "moves", len(h.moves))
		moves = append(moves, h.moves...)
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	records := builder.Build(moves)
	if err := s.transfers.ReplaceRecords(ctx, records); err != nil {
		return summary, fmt.Errorf("replace base table: %w", err)
	}
	summary.RowsUpdated = len(records)
	for _, r := range records {
		if !r.Origin.LeagueResolved() || !r.Destination.LeagueResolved() {
			summary.Unresolved++
		}
	}
	summary.finish()
	summary.log(ctx, s.logger)
	return summary, nil
}

// Resolve fills unresolved leagues of the stored table from the league
// history, e.g. after the history or the alias table was curated.
func (s *BuildService) Resolve(ctx context.Context) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BuildService.Resolve")
	defer span.End()

	summary := newRunSummary(s.ids, "resolve")
	builder, _, err := s.prepare(ctx)
	if err != nil {
		return summary, err
	}
	records, err := s.transfers.ListRecords(ctx)
	if err != nil {
		return summary, fmt.Errorf("list records: %w", err)
	}

	tbl := transfer.NewTable(records)
	for i := 0; i < tbl.Len(); i++ {
		tbl.Update(i, func(r *transfer.Record) bool {
			changed := false
			for _, role := range transfer.Roles {
				side := r.Side(role)
				if side.LeagueResolved() {
					continue
				}
				summary.Tasks++
				if league := builder.resolver.League(side.Club, r.Season); league != leaguehistory.Unresolved {
					side.League = league
					summary.Resolved++
					changed = true
				} else {
					summary.Unresolved++
				}
			}
			return changed
		})
	}

	dirty := tbl.Dirty()
	if len(dirty) > 0 {
		if err := s.transfers.UpsertRecords(ctx, dirty); err != nil {
			return summary, fmt.Errorf("upsert resolved records: %w", err)
		}
	}
	summary.RowsUpdated = len(dirty)
	summary.finish()
	summary.log(ctx, s.logger)
	return summary, nil
}

func (s *BuildService) prepare(ctx context.Context) (*RecordBuilder, []club.Listing, error) {
	normalizer, err := s.aliases.Normalizer(ctx)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.history.ListEntries(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list league history: %w", err)
	}
	if len(entries) == 0 {
		s.logger.WarnContext(ctx, "league history is empty; every league will be unresolved")
	}
	builder := NewRecordBuilder(normalizer, leaguehistory.NewResolver(entries), season.NewSet(s.cfg.Seasons...))
	return builder, leaguehistory.Listings(entries), nil
}

func workerCount(requested, tasks int) int {
	if requested < 1 {
		requested = 1
	}
	if tasks > 0 && requested > tasks {
		return tasks
	}
	return requested
}
