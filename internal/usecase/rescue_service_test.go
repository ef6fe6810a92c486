package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/ro-transfer-hub/internal/mocks/usecase"
)

func rescueFixture() []transfer.Record {
	return []transfer.Record{
		record(1, "21/22", sideOf("FCSB", 301, "Superliga", "Romania"), sideOf("Foreign Club", 999, "TBD", "")),
		record(2, "21/22", sideOf("Foreign Club", 999, "TBD", ""), sideOf("Farul", 888, "Superliga", "Romania")),
		record(3, "21/22", sideOf("Retired", 123, "TBD", ""), sideOf("Farul", 888, "Superliga", "Romania")),
		record(4, "20/21", sideOf("FCSB", 301, "Superliga", ""), sideOf("Farul", 888, "Superliga", "Romania")),
	}
}

func TestPlanRescueSortsAndSkipsPlaceholders(t *testing.T) {
	t.Parallel()

	tasks := PlanRescue(transfer.NewTable(rescueFixture()))
	require.Len(t, tasks, 2)
	assert.Equal(t, transfer.ClubSeason{ClubID: 301, Season: "20/21"}, tasks[0].ClubSeason)
	assert.Equal(t, transfer.ClubSeason{ClubID: 999, Season: "21/22"}, tasks[1].ClubSeason)
	assert.Equal(t, "Foreign Club", tasks[1].ClubName)
	assert.Equal(t, RescuePending, tasks[1].State)
}

func TestRescueServiceRunFillsEveryReference(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewTransferRepository(rescueFixture())
	source := usecasemock.NewClubSeasonSource(t)
	source.
		On("FetchClubSeason", mock.Anything, int64(999), season.Label("21/22")).
		Return(leaguehistory.ClubContext{League: "Ligue 1", Country: "France"}, nil).
		Once()
	source.
		On("FetchClubSeason", mock.Anything, int64(301), season.Label("20/21")).
		Return(leaguehistory.ClubContext{League: "Superliga", Country: "Romania"}, nil).
		Once()

	svc := NewRescueService(source, repo, testIDs, testLogger(), RescueConfig{Workers: 2, CheckpointEvery: 1})
	summary, tasks, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Tasks)
	assert.Equal(t, 2, summary.Resolved)
	assert.Equal(t, 3, summary.RowsUpdated)
	assert.Zero(t, summary.Conflicts)
	assert.Equal(t, 2, summary.Checkpoints)
	for _, task := range tasks {
		assert.Equal(t, RescueResolved, task.State)
	}

	got, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ligue 1", got[0].Destination.League)
	assert.Equal(t, "France", got[0].Destination.Country)
	assert.Equal(t, "Ligue 1", got[1].Origin.League)
	assert.Equal(t, "TBD", got[2].Origin.League)
	assert.Equal(t, "Romania", got[3].Origin.Country)
}

func TestRescueServiceRunIsolatesFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewTransferRepository(rescueFixture())
	source := usecasemock.NewClubSeasonSource(t)
	source.
		On("FetchClubSeason", mock.Anything, int64(999), season.Label("21/22")).
		Return(leaguehistory.ClubContext{}, errors.New("challenge page")).
		Once()
	source.
		On("FetchClubSeason", mock.Anything, int64(301), season.Label("20/21")).
		Return(leaguehistory.ClubContext{}, fmt.Errorf("club season page: %w", ErrParseMiss)).
		Once()

	svc := NewRescueService(source, repo, testIDs, testLogger(), RescueConfig{Workers: 1})
	summary, tasks, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Unresolved)
	assert.Zero(t, summary.RowsUpdated)
	assert.Equal(t, RescueUnresolved, tasks[0].State)
	assert.Equal(t, RescueSkipped, tasks[1].State)

	got, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, rescueFixture(), got)
}

func TestRescueServiceRunReportsConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records := []transfer.Record{
		record(1, "21/22", sideOf("Foreign Club", 999, "Ligue 2", ""), sideOf("Farul", 888, "Superliga", "Romania")),
	}
	repo := memory.NewTransferRepository(records)
	source := usecasemock.NewClubSeasonSource(t)
	source.
		On("FetchClubSeason", mock.Anything, int64(999), season.Label("21/22")).
		Return(leaguehistory.ClubContext{League: "Ligue 1", Country: "France"}, nil).
		Once()

	summary, _, err := NewRescueService(source, repo, testIDs, testLogger(), RescueConfig{}).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Conflicts)
	assert.Equal(t, 1, summary.RowsUpdated)

	got, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ligue 2", got[0].Origin.League)
	assert.Equal(t, "France", got[0].Origin.Country)
}

func TestRescueServiceRunWithNothingToDo(t *testing.T) {
	t.Parallel()

	repo := memory.NewTransferRepository([]transfer.Record{
		record(1, "21/22", sideOf("FCSB", 301, "Superliga", "Romania"), sideOf("Farul", 888, "Superliga", "Romania")),
	})
	summary, tasks, err := NewRescueService(usecasemock.NewClubSeasonSource(t), repo, testIDs, testLogger(), RescueConfig{}).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Zero(t, summary.Tasks)
}
