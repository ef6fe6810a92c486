package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/player"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/ro-transfer-hub/internal/mocks/usecase"
)

func TestPlanEnrichmentSkipsCompleteAndAnonymousRows(t *testing.T) {
	t.Parallel()

	complete := record(3, "21/22", sideOf("A", 1, "L", "C"), sideOf("B", 2, "L", "C"))
	complete.DateOfBirth = stringPtr("01/01/2000")
	complete.Citizenship = stringPtr("Romania")
	complete.MarketValueAtTransfer = float64Ptr(1)
	complete.MarketValueNextSeason = float64Ptr(2)
	anonymous := record(0, "21/22", sideOf("A", 1, "L", "C"), sideOf("B", 2, "L", "C"))
	anonymous.PlayerID = nil

	tbl := transfer.NewTable([]transfer.Record{
		record(10, "21/22", sideOf("A", 1, "L", "C"), sideOf("B", 2, "L", "C")),
		complete,
		anonymous,
		record(10, "22/23", sideOf("B", 2, "L", "C"), sideOf("D", 4, "L", "C")),
	})
	tasks := PlanEnrichment(tbl)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(10), tasks[0].PlayerID)
}

func TestEnrichmentServiceRunFillsBioAndValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	first := record(10, "21/22", sideOf("Sepsi OSK Sf. Gheorghe", 60949, "Superliga", "Romania"), sideOf("FC Botosani", 14, "Superliga", "Romania"))
	latest := record(10, "23/24", sideOf("FC Botosani", 14, "Superliga", "Romania"), sideOf("FCSB", 301, "Superliga", "Romania"))
	done := record(10, "19/20", sideOf("X", 9, "Liga 2", "Romania"), sideOf("Sepsi OSK Sf. Gheorghe", 60949, "Superliga", "Romania"))
	done.MarketValueAtTransfer = float64Ptr(9)
	done.MarketValueNextSeason = float64Ptr(9)
	repo := memory.NewTransferRepository([]transfer.Record{first, latest, done})

	source := usecasemock.NewPlayerProfileSource(t)
	source.
		On("FetchPlayerProfile", mock.Anything, int64(10)).
		Return(player.Profile{
			ID:                 10,
			DateOfBirth:        stringPtr("15/03/1999"),
			Citizenship:        stringPtr("Romania"),
			CurrentMarketValue: 2.0,
			History: []player.HistoryEntry{
				player.NewHistoryEntry("23/24", 1.5, "FC Botosani"),
				player.NewHistoryEntry("21/22", 0.8, "Sepsi OSK"),
				player.NewHistoryEntry("19/20", 0.3, "X"),
			},
		}, nil).
		Once()

	svc := NewEnrichmentService(source, repo, testIDs, testLogger(), EnrichmentConfig{Workers: 2})
	summary, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Tasks)
	assert.Equal(t, 1, summary.Resolved)
	assert.Equal(t, 3, summary.RowsUpdated)

	got, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.NotNil(t, got[0].MarketValueAtTransfer)
	assert.InDelta(t, 0.8, *got[0].MarketValueAtTransfer, 1e-9)
	require.NotNil(t, got[0].MarketValueNextSeason)
	assert.InDelta(t, 1.5, *got[0].MarketValueNextSeason, 1e-9)
	assert.Equal(t, "15/03/1999", *got[0].DateOfBirth)

	require.NotNil(t, got[1].MarketValueNextSeason)
	assert.InDelta(t, 2.0, *got[1].MarketValueNextSeason, 1e-9)

	assert.InDelta(t, 9, *got[2].MarketValueAtTransfer, 1e-9)
	assert.Equal(t, "Romania", *got[2].Citizenship)
}

func TestEnrichmentServiceRunSkipsUnavailablePlayers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewTransferRepository([]transfer.Record{
		record(10, "21/22", sideOf("A", 1, "L", "C"), sideOf("B", 2, "L", "C")),
		record(11, "21/22", sideOf("A", 1, "L", "C"), sideOf("B", 2, "L", "C")),
	})
	source := usecasemock.NewPlayerProfileSource(t)
	source.On("FetchPlayerProfile", mock.Anything, int64(10)).Return(player.Profile{}, errors.New("timeout")).Once()
	source.On("FetchPlayerProfile", mock.Anything, int64(11)).Return(player.Profile{ID: 11}, nil).Once()

	summary, err := NewEnrichmentService(source, repo, testIDs, testLogger(), EnrichmentConfig{Workers: 2}).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Tasks)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Unresolved)
	assert.Zero(t, summary.RowsUpdated)

	got, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	for _, r := range got {
		assert.Nil(t, r.DateOfBirth)
		assert.Nil(t, r.MarketValueAtTransfer)
	}
}

func TestEnrichmentServiceRunCountsParseMissAsUnresolved(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewTransferRepository([]transfer.Record{
		record(12, "21/22", sideOf("A", 1, "L", "C"), sideOf("B", 2, "L", "C")),
	})
	source := usecasemock.NewPlayerProfileSource(t)
	source.On("FetchPlayerProfile", mock.Anything, int64(12)).
		Return(player.Profile{}, fmt.Errorf("player page: %w", ErrParseMiss)).
		Once()

	summary, err := NewEnrichmentService(source, repo, testIDs, testLogger(), EnrichmentConfig{Workers: 1}).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Unresolved)
	assert.Zero(t, summary.Skipped)
	assert.Zero(t, summary.RowsUpdated)
}
