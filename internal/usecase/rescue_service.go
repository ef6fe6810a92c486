package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/stream"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/id"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

type RescueState string

const (
	RescuePending    RescueState = "pending"
	RescueQueried    RescueState = "queried"
	RescueResolved   RescueState = "resolved"
	RescueUnresolved RescueState = "unresolved"
	RescueSkipped    RescueState = "skipped"
)

// RescueTask is one (club id, season) context with a missing league or
// country on at least one side.
type RescueTask struct {
	transfer.ClubSeason
	ClubName string
	State    RescueState
}

type RescueConfig struct {
	Workers         int
	CheckpointEvery int
}

// RescueService re-reads each unresolved club season from the club's own
// season page and back-fills every record that references it.
type RescueService struct {
	source ClubSeasonSource
	repo   transfer.Repository
	ids    id.Generator
	logger *logging.Logger
	cfg    RescueConfig
}

func NewRescueService(source ClubSeasonSource, repo transfer.Repository, ids id.Generator, logger *logging.Logger, cfg RescueConfig) *RescueService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.CheckpointEvery < 1 {
		cfg.CheckpointEvery = 10
	}
	return &RescueService{source: source, repo: repo, ids: ids, logger: logger.With("pass", "rescue"), cfg: cfg}
}

// PlanRescue lists pending tasks sorted by club id then season. Sides with a
// placeholder club never produce a task. The task name is the last name
// seen for the key, destinations scanned after origins.
func PlanRescue(tbl *transfer.Table) []RescueTask {
	names := make(map[transfer.ClubSeason]string)
	tbl.ClubSides(func(row int, _ transfer.Role, side transfer.Side) {
		if !club.IsResolvable(side.ClubID, side.Club) {
			return
		}
		if side.LeagueResolved() && side.CountryResolved() {
			return
		}
		names[transfer.ClubSeason{ClubID: *side.ClubID, Season: tbl.At(row).Season}] = side.Club
	})

	tasks := make([]RescueTask, 0, len(names))
	for key, name := range names {
		tasks = append(tasks, RescueTask{ClubSeason: key, ClubName: name, State: RescuePending})
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].ClubID != tasks[j].ClubID {
			return tasks[i].ClubID < tasks[j].ClubID
		}
		return tasks[i].Season.StartYear() < tasks[j].Season.StartYear()
	})
	return tasks
}

// Run executes one rescue pass. Fetches run concurrently up to the worker
// limit; results are applied one at a time in task order, so the table has
// a single writer. Progress is checkpointed every CheckpointEvery tasks and
// on exit, including cancellation.
func (s *RescueService) Run(ctx context.Context) (RunSummary, []RescueTask, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RescueService.Run")
	defer span.End()

	summary := newRunSummary(s.ids, "rescue")
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return summary, nil, fmt.Errorf("list records: %w", err)
	}
	tbl := transfer.NewTable(records)
	tasks := PlanRescue(tbl)
	summary.Tasks = len(tasks)
	span.SetAttributes(attribute.Int("tasks", len(tasks)))
	if len(tasks) == 0 {
		s.logger.InfoContext(ctx, "no unresolved club contexts")
		summary.finish()
		return summary, tasks, nil
	}
	s.logger.InfoContext(ctx, "rescue planned", "tasks", len(tasks), "run_id", summary.RunID)

	cp := newCheckpointer(s.repo, s.logger, s.cfg.CheckpointEvery)
	st := stream.New().WithMaxGoroutines(workerCount(s.cfg.Workers, len(tasks)))
	for i := range tasks {
		task := &tasks[i]
		st.Go(func() stream.Callback {
			if ctx.Err() != nil {
				return func() { task.State = RescueSkipped; summary.Skipped++ }
			}
			found, fetchErr := s.source.FetchClubSeason(ctx, task.ClubID, task.Season)
			return func() {
				task.State = RescueQueried
				s.apply(ctx, tbl, task, found, fetchErr, &summary)
				cp.tick(ctx, tbl)
			}
		})
	}
	st.Wait()

	if err := cp.flush(context.WithoutCancel(ctx), tbl); err != nil {
		return summary, tasks, fmt.Errorf("persist rescued records: %w", err)
	}
	summary.Checkpoints = cp.writes
	summary.finish()
	summary.log(ctx, s.logger)
	if err := ctx.Err(); err != nil {
		return summary, tasks, err
	}
	return summary, tasks, nil
}

func (s *RescueService) apply(ctx context.Context, tbl *transfer.Table, task *RescueTask, found leaguehistory.ClubContext, fetchErr error, summary *RunSummary) {
	log := s.logger.With("club", task.ClubName, "club_id", task.ClubID, "season", task.Season)
	if errors.Is(fetchErr, ErrParseMiss) {
		task.State = RescueUnresolved
		summary.Unresolved++
		log.WarnContext(ctx, "club season page has no league or country", "error", fetchErr)
		return
	}
	if fetchErr != nil {
		task.State = RescueSkipped
		summary.Skipped++
		log.WarnContext(ctx, "club season page unavailable", "error", fetchErr)
		return
	}
	if found.Empty() {
		task.State = RescueUnresolved
		summary.Unresolved++
		log.WarnContext(ctx, "club season page has no league or country")
		return
	}

	res := tbl.ApplyClubContext(task.ClubSeason, found.League, found.Country)
	task.State = RescueResolved
	summary.Resolved++
	summary.RowsUpdated += res.RowsUpdated
	summary.Conflicts += len(res.Conflicts)
	for _, c := range res.Conflicts {
		log.WarnContext(ctx, "club season already resolved to a different value",
			"record", c.Key.String(), "role", c.Role, "field", c.Field, "existing", c.Existing, "incoming", c.Incoming)
	}
	log.InfoContext(ctx, "club season resolved", "league", found.League, "country", found.Country, "rows", res.RowsUpdated)
}
