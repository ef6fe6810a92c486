package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/player"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/id"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

type EnrichmentConfig struct {
	Workers         int
	CheckpointEvery int
}

// EnrichmentService fills biography and market-value fields from player
// pages.
type EnrichmentService struct {
	source PlayerProfileSource
	repo   transfer.Repository
	ids    id.Generator
	logger *logging.Logger
	cfg    EnrichmentConfig
}

func NewEnrichmentService(source PlayerProfileSource, repo transfer.Repository, ids id.Generator, logger *logging.Logger, cfg EnrichmentConfig) *EnrichmentService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.CheckpointEvery < 1 {
		cfg.CheckpointEvery = 1
	}
	return &EnrichmentService{source: source, repo: repo, ids: ids, logger: logger.With("pass", "enrich"), cfg: cfg}
}

// PlayerTask is one player with at least one row missing enrichment.
type PlayerTask struct {
	PlayerID int64
	Name     string
}

// PlanEnrichment lists players in first-seen order whose rows still miss a
// birth date, citizenship or market value. Rows without a usable player id
// are ignored.
func PlanEnrichment(tbl *transfer.Table) []PlayerTask {
	seen := make(map[int64]struct{})
	var tasks []PlayerTask
	for i := 0; i < tbl.Len(); i++ {
		r := tbl.At(i)
		if !r.HasPlayerID() || !r.NeedsEnrichment() {
			continue
		}
		if _, dup := seen[*r.PlayerID]; dup {
			continue
		}
		seen[*r.PlayerID] = struct{}{}
		tasks = append(tasks, PlayerTask{PlayerID: *r.PlayerID, Name: r.PlayerName})
	}
	return tasks
}

type profileResult struct {
	task    PlayerTask
	profile player.Profile
	err     error
}

// Run fetches player pages on a bounded pool and applies each profile from a
// single consumer goroutine, checkpointing every CheckpointEvery players.
func (s *EnrichmentService) Run(ctx context.Context) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.Run")
	defer span.End()

	summary := newRunSummary(s.ids, "enrich")
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return summary, fmt.Errorf("list records: %w", err)
	}
	tbl := transfer.NewTable(records)
	tasks := PlanEnrichment(tbl)
	summary.Tasks = len(tasks)
	span.SetAttributes(attribute.Int("players", len(tasks)))
	if len(tasks) == 0 {
		s.logger.InfoContext(ctx, "no players need enrichment")
		summary.finish()
		return summary, nil
	}

	pool, err := ants.NewPool(workerCount(s.cfg.Workers, len(tasks)))
	if err != nil {
		return summary, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan profileResult, len(tasks))
	var workers sync.WaitGroup
	submitErr := make(chan error, 1)
	go func() {
		defer close(submitErr)
		for _, task := range tasks {
			workers.Add(1)
			if err := pool.Submit(func() {
				defer workers.Done()
				if ctx.Err() != nil {
					results <- profileResult{task: task, err: ctx.Err()}
					return
				}
				profile, err := s.source.FetchPlayerProfile(ctx, task.PlayerID)
				results <- profileResult{task: task, profile: profile, err: err}
			}); err != nil {
				workers.Done()
				submitErr <- fmt.Errorf("submit player %d to worker pool: %w", task.PlayerID, err)
				break
			}
		}
		workers.Wait()
		close(results)
	}()

	cp := newCheckpointer(s.repo, s.logger, s.cfg.CheckpointEvery)
	for res := range results {
		s.apply(ctx, tbl, res, &summary)
		cp.tick(ctx, tbl)
	}

	if err := cp.flush(context.WithoutCancel(ctx), tbl); err != nil {
		return summary, fmt.Errorf("persist enriched records: %w", err)
	}
	summary.Checkpoints = cp.writes
	summary.finish()
	summary.log(ctx, s.logger)
	if err := <-submitErr; err != nil {
		return summary, err
	}
	return summary, ctx.Err()
}

func (s *EnrichmentService) apply(ctx context.Context, tbl *transfer.Table, res profileResult, summary *RunSummary) {
	log := s.logger.With("player", res.task.Name, "player_id", res.task.PlayerID)
	if errors.Is(res.err, ErrParseMiss) {
		summary.Unresolved++
		log.WarnContext(ctx, "player page has no profile data", "error", res.err)
		return
	}
	if res.err != nil {
		summary.Skipped++
		log.WarnContext(ctx, "player page unavailable", "error", res.err)
		return
	}

	p := res.profile
	if !p.HasBio() {
		log.WarnContext(ctx, "player page has no birth date or citizenship")
	}

	matched, missed := 0, 0
	for _, i := range tbl.PlayerRows(res.task.PlayerID) {
		if tbl.Update(i, func(r *transfer.Record) bool {
			changed := fillBio(r, p)
			if r.MarketValueAtTransfer != nil && r.MarketValueNextSeason != nil {
				return changed
			}
			m, ok := player.MatchMarketValue(p.History, r.Season, r.Origin.Club, p.CurrentMarketValue)
			if !ok {
				missed++
				return changed
			}
			matched++
			if r.MarketValueAtTransfer == nil {
				v := m.AtTransfer
				r.MarketValueAtTransfer = &v
				changed = true
			}
			if r.MarketValueNextSeason == nil && m.NextSeason != nil {
				v := *m.NextSeason
				r.MarketValueNextSeason = &v
				changed = true
			}
			return changed
		}) {
			summary.RowsUpdated++
		}
	}

	if matched > 0 || p.HasBio() {
		summary.Resolved++
	} else {
		summary.Unresolved++
	}
	log.InfoContext(ctx, "player enriched", "history_rows", len(p.History), "matched_rows", matched, "unmatched_rows", missed)
}

func fillBio(r *transfer.Record, p player.Profile) bool {
	changed := false
	if r.DateOfBirth == nil && p.DateOfBirth != nil {
		v := *p.DateOfBirth
		r.DateOfBirth = &v
		changed = true
	}
	if r.Citizenship == nil && p.Citizenship != nil {
		v := *p.Citizenship
		r.Citizenship = &v
		changed = true
	}
	return changed
}
