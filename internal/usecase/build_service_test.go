package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/ro-transfer-hub/internal/mocks/usecase"
)

func TestBuildServiceBuildSkipsFailedClubs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	history := memory.NewHistoryRepository([]leaguehistory.Entry{
		{ClubName: "FC Dinamo 1948", ClubID: 312, Season: "21/22", League: "Superliga", TransferURL: "https://example.test/dinamo"},
		{ClubName: "UTA Arad", ClubID: 1028, Season: "21/22", League: "Superliga", TransferURL: "https://example.test/uta"},
		{ClubName: "FC Dinamo 1948", ClubID: 312, Season: "22/23", League: "Liga 2", TransferURL: "https://example.test/dinamo"},
	})
	aliases := NewAliasService(memory.NewAliasRepository(memory.SeedAliases()), testLogger())
	transfers := memory.NewTransferRepository(nil)
	source := usecasemock.NewClubTransferSource(t)

	source.
		On("FetchClubTransfers", mock.Anything, club.Listing{Name: "FC Dinamo 1948", ID: 312, TransferURL: "https://example.test/dinamo"}).
		Return([]transfer.RawMove{{
			FocusClub:     "FC Dinamo 1948",
			FocusClubID:   int64Ptr(312),
			Direction:     transfer.Departure,
			Season:        "22/23",
			PlayerName:    "Mover",
			PlayerID:      int64Ptr(44),
			PartnerClub:   "UTA",
			PartnerClubID: int64Ptr(1028),
			FeeText:       "€300k",
		}}, nil).
		Once()
	source.
		On("FetchClubTransfers", mock.Anything, club.Listing{Name: "UTA Arad", ID: 1028, TransferURL: "https://example.test/uta"}).
		Return(nil, errors.New("blocked")).
		Once()

	svc := NewBuildService(aliases, history, transfers, source, testIDs, testLogger(), BuildConfig{
		Seasons: season.Range(2019, 2025),
		Workers: 2,
	})
	summary, err := svc.Build(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, 2, summary.Tasks)
	assert.Equal(t, 1, summary.Resolved)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.RowsUpdated)
	assert.Equal(t, 1, summary.Unresolved)

	got, err := transfers.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Liga 2", got[0].Origin.League)
	assert.Equal(t, "UTA Arad", got[0].Destination.Club)
	assert.Equal(t, leaguehistory.Unresolved, got[0].Destination.League)
	assert.InDelta(t, 0.3, got[0].FeeEstM, 1e-9)
}

func TestBuildServiceResolveFillsFromHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	history := memory.NewHistoryRepository([]leaguehistory.Entry{
		{ClubName: "UTA Arad", ClubID: 1028, Season: "22/23", League: "Superliga"},
	})
	transfers := memory.NewTransferRepository([]transfer.Record{
		record(1, "22/23", sideOf("FC Dinamo 1948", 312, "Liga 2", "Romania"), sideOf("UTA Arad", 1028, "TBD", "")),
		record(2, "22/23", sideOf("Nowhere", 5, "TBD", ""), sideOf("UTA Arad", 1028, "Superliga", "Romania")),
	})
	svc := NewBuildService(NewAliasService(memory.NewAliasRepository(nil), testLogger()), history, transfers, nil, testIDs, testLogger(), BuildConfig{})

	summary, err := svc.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Tasks)
	assert.Equal(t, 1, summary.Resolved)
	assert.Equal(t, 1, summary.Unresolved)
	assert.Equal(t, 1, summary.RowsUpdated)

	got, err := transfers.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Superliga", got[0].Destination.League)
	assert.Equal(t, "TBD", got[1].Origin.League)
}

func TestWorkerCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, workerCount(0, 10))
	assert.Equal(t, 3, workerCount(8, 3))
	assert.Equal(t, 4, workerCount(4, 0))
}
