package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/review"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/id"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

// ReviewService is the human-in-the-loop side channel: it reports club
// seasons the automated passes could not resolve and applies curated answers.
type ReviewService struct {
	transfers transfer.Repository
	store     review.Store
	validate  *validator.Validate
	ids       id.Generator
	logger    *logging.Logger
}

func NewReviewService(transfers transfer.Repository, store review.Store, validate *validator.Validate, ids id.Generator, logger *logging.Logger) *ReviewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReviewService{transfers: transfers, store: store, validate: validate, ids: ids, logger: logger.With("pass", "review")}
}

// Report lists club seasons whose league is unresolved on any side, ranked
// by how many sides reference them. Sides without a real club id are left
// out. Name and country come from the first side seen, origins first.
func (s *ReviewService) Report(ctx context.Context) ([]review.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReviewService.Report")
	defer span.End()

	records, err := s.transfers.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return buildReviewReport(transfer.NewTable(records)), nil
}

func buildReviewReport(tbl *transfer.Table) []review.Item {
	index := make(map[transfer.ClubSeason]int)
	var items []review.Item
	tbl.ClubSides(func(row int, _ transfer.Role, side transfer.Side) {
		if side.LeagueResolved() || club.IsPlaceholderID(*side.ClubID) {
			return
		}
		key := transfer.ClubSeason{ClubID: *side.ClubID, Season: tbl.At(row).Season}
		i, ok := index[key]
		if !ok {
			i = len(items)
			index[key] = i
			items = append(items, review.Item{
				ClubID:          key.ClubID,
				ClubName:        side.Club,
				Season:          key.Season,
				ExistingCountry: side.Country,
			})
		}
		items[i].Occurrences++
	})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Occurrences != items[j].Occurrences {
			return items[i].Occurrences > items[j].Occurrences
		}
		if items[i].ClubID != items[j].ClubID {
			return items[i].ClubID < items[j].ClubID
		}
		return items[i].Season.StartYear() < items[j].Season.StartYear()
	})
	return items
}

// ExportReport writes the current report to the review store.
func (s *ReviewService) ExportReport(ctx context.Context) ([]review.Item, error) {
	items, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.WriteItems(ctx, items); err != nil {
		return nil, fmt.Errorf("write review report: %w", err)
	}
	s.logger.InfoContext(ctx, "review report written", "contexts", len(items))
	return items, nil
}

// ApplyReview reads the curated report and fills unresolved leagues, and
// blank countries, for every record of each reviewed club season. Rows with
// no answer or invalid fields are skipped. Resolved values are never
// overwritten.
func (s *ReviewService) ApplyReview(ctx context.Context) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReviewService.ApplyReview")
	defer span.End()

	summary := newRunSummary(s.ids, "review-apply")
	items, err := s.store.ReadItems(ctx)
	if err != nil {
		return summary, fmt.Errorf("read review report: %w", err)
	}
	records, err := s.transfers.ListRecords(ctx)
	if err != nil {
		return summary, fmt.Errorf("list records: %w", err)
	}
	tbl := transfer.NewTable(records)

	for _, item := range items {
		summary.Tasks++
		if err := s.validate.StructCtx(ctx, item); err != nil {
			summary.Skipped++
			s.logger.DebugContext(ctx, "review row skipped", "club_id", item.ClubID, "season", item.Season, "error", err)
			continue
		}
		if transfer.IsUnresolvedLeague(item.NewLeague) {
			summary.Unresolved++
			continue
		}
		res := tbl.ApplyClubContext(transfer.ClubSeason{ClubID: item.ClubID, Season: item.Season}, item.NewLeague, item.ExistingCountry)
		summary.Resolved++
		summary.RowsUpdated += res.RowsUpdated
		summary.Conflicts += len(res.Conflicts)
	}

	if dirty := tbl.Dirty(); len(dirty) > 0 {
		if err := s.transfers.UpsertRecords(ctx, dirty); err != nil {
			return summary, fmt.Errorf("upsert reviewed records: %w", err)
		}
		summary.Checkpoints = 1
	}
	summary.finish()
	summary.log(ctx, s.logger)
	return summary, nil
}

// LeagueConflict is a club season whose records disagree on the league.
type LeagueConflict struct {
	ClubID  int64        `json:"club_id"`
	Season  season.Label `json:"season"`
	Leagues []string     `json:"leagues"`
}

// Consistency checks that every club plays in one league per season.
func (s *ReviewService) Consistency(ctx context.Context) ([]LeagueConflict, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReviewService.Consistency")
	defer span.End()

	records, err := s.transfers.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	conflicts := transfer.NewTable(records).LeagueConflicts()
	out := make([]LeagueConflict, 0, len(conflicts))
	for key, leagues := range conflicts {
		out = append(out, LeagueConflict{ClubID: key.ClubID, Season: key.Season, Leagues: leagues})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ClubID != out[j].ClubID {
			return out[i].ClubID < out[j].ClubID
		}
		return out[i].Season.StartYear() < out[j].Season.StartYear()
	})
	for _, c := range out {
		s.logger.WarnContext(ctx, "club has several leagues in one season", "club_id", c.ClubID, "season", c.Season, "leagues", c.Leagues)
	}
	return out, nil
}
