package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/id"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

// RunSummary is the operator-facing outcome of one batch pass.
type RunSummary struct {
	RunID       string        `json:"run_id"`
	Pass        string        `json:"pass"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
	Tasks       int           `json:"tasks"`
	Resolved    int           `json:"resolved"`
	Unresolved  int           `json:"unresolved"`
	Skipped     int           `json:"skipped"`
	RowsUpdated int           `json:"rows_updated"`
	Conflicts   int           `json:"conflicts"`
	Checkpoints int           `json:"checkpoints"`
}

func newRunSummary(ids id.Generator, pass string) RunSummary {
	s := RunSummary{Pass: pass, StartedAt: time.Now()}
	if ids != nil {
		if runID, err := ids.NewID(); err == nil {
			s.RunID = runID
		}
	}
	return s
}

func (s *RunSummary) finish() {
	s.Duration = time.Since(s.StartedAt).Round(time.Millisecond)
}

func (s RunSummary) log(ctx context.Context, logger *logging.Logger) {
	logger.InfoContext(ctx, "pass finished",
		"run_id", s.RunID,
		"pass", s.Pass,
		"tasks", s.Tasks,
		"resolved", s.Resolved,
		"unresolved", s.Unresolved,
		"skipped", s.Skipped,
		"rows_updated", s.RowsUpdated,
		"conflicts", s.Conflicts,
		"duration", s.Duration,
	)
}

// checkpointer persists dirty rows of a table by key.
type checkpointer struct {
	repo   transfer.Repository
	logger *logging.Logger
	every  int
	since  int
	writes int
}

func newCheckpointer(repo transfer.Repository, logger *logging.Logger, every int) *checkpointer {
	if every < 1 {
		every = 1
	}
	return &checkpointer{repo: repo, logger: logger, every: every}
}

// tick counts one finished task and flushes once every n tasks. A failed
// flush keeps the rows dirty so the next flush retries them.
func (c *checkpointer) tick(ctx context.Context, tbl *transfer.Table) {
	c.since++
	if c.since < c.every {
		return
	}
	if err := c.flush(ctx, tbl); err != nil {
		c.logger.WarnContext(ctx, "checkpoint failed, will retry", "rows", tbl.DirtyCount(), "error", err)
	}
}

func (c *checkpointer) flush(ctx context.Context, tbl *transfer.Table) error {
	c.since = 0
	dirty := tbl.Dirty()
	if len(dirty) == 0 {
		return nil
	}
	if err := c.repo.UpsertRecords(ctx, dirty); err != nil {
		return err
	}
	tbl.ClearDirty()
	c.writes++
	c.logger.DebugContext(ctx, "checkpoint written", "rows", len(dirty))
	return nil
}
