package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/id"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

// HistoryService rebuilds the season-scoped league history from the
// configured competitions' club tables.
type HistoryService struct {
	sources []leaguehistory.Source
	source  CompetitionSource
	repo    leaguehistory.Repository
	ids     id.Generator
	logger  *logging.Logger
	workers int
}

func NewHistoryService(
	sources []leaguehistory.Source,
	source CompetitionSource,
	repo leaguehistory.Repository,
	ids id.Generator,
	logger *logging.Logger,
	workers int,
) *HistoryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &HistoryService{
		sources: sources,
		source:  source,
		repo:    repo,
		ids:     ids,
		logger:  logger.With("pass", "history"),
		workers: workers,
	}
}

type competitionSeason struct {
	src    leaguehistory.Source
	season season.Label
}

type competitionResult struct {
	task    competitionSeason
	entries []leaguehistory.Entry
	err     error
}

// Harvest fetches every (competition, season) table and replaces the stored
// history. Failed tables are skipped; if every table fails the stored
// history is kept.
func (s *HistoryService) Harvest(ctx context.Context) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.Harvest")
	defer span.End()

	summary := newRunSummary(s.ids, "history")
	var tasks []competitionSeason
	for _, src := range s.sources {
		for _, l := range src.Seasons {
			tasks = append(tasks, competitionSeason{src: src, season: l})
		}
	}
	summary.Tasks = len(tasks)
	if len(tasks) == 0 {
		return summary, fmt.Errorf("%w: no league sources configured", ErrInvalidInput)
	}

	mapper := iter.Mapper[competitionSeason, competitionResult]{MaxGoroutines: workerCount(s.workers, len(tasks))}
	results := mapper.Map(tasks, func(t *competitionSeason) competitionResult {
		if err := ctx.Err(); err != nil {
			return competitionResult{task: *t, err: err}
		}
		entries, err := s.source.FetchCompetitionClubs(ctx, t.src, t.season)
		return competitionResult{task: *t, entries: entries, err: err}
	})

	var all []leaguehistory.Entry
	for _, r := range results {
		if r.err != nil {
			summary.Skipped++
			s.logger.WarnContext(ctx, "competition table unavailable", "league", r.task.src.League, "season", r.task.season, "error", r.err)
			continue
		}
		if len(r.entries) == 0 {
			summary.Unresolved++
			s.logger.WarnContext(ctx, "competition table empty", "league", r.task.src.League, "season", r.task.season)
			continue
		}
		summary.Resolved++
		all = append(all, r.entries...)
	}
	if summary.Resolved == 0 {
		return summary, fmt.Errorf("%w: no competition table could be read", ErrDependencyUnavailable)
	}

	entries := leaguehistory.Dedupe(all)
	if err := s.repo.ReplaceEntries(ctx, entries); err != nil {
		return summary, fmt.Errorf("replace league history: %w", err)
	}
	summary.RowsUpdated = len(entries)
	summary.finish()
	summary.log(ctx, s.logger)
	s.logger.InfoContext(ctx, "club scrape list derived", "clubs", len(leaguehistory.Listings(entries)))
	return summary, nil
}
