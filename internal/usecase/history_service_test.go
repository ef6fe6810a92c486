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
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/ro-transfer-hub/internal/mocks/usecase"
)

var (
	superliga = leaguehistory.Source{League: "Superliga", Code: "RO1", Slug: "superliga", Seasons: []season.Label{"21/22", "22/23"}}
	liga2     = leaguehistory.Source{League: "Liga 2", Code: "RO2", Slug: "liga-2", Seasons: []season.Label{"22/23"}}
)

func TestHistoryServiceHarvestDedupesAndSkipsFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewHistoryRepository(nil)
	source := usecasemock.NewCompetitionSource(t)
	source.On("FetchCompetitionClubs", mock.Anything, superliga, season.Label("21/22")).Return([]leaguehistory.Entry{
		{ClubName: "FCSB", ClubID: 301, Season: "21/22", League: "Superliga"},
		{ClubName: "FCSB", ClubID: 301, Season: "21/22", League: "Superliga"},
		{ClubName: "FC Dinamo 1948", ClubID: 312, Season: "21/22", League: "Superliga"},
	}, nil).Once()
	source.On("FetchCompetitionClubs", mock.Anything, superliga, season.Label("22/23")).Return(nil, errors.New("blocked")).Once()
	source.On("FetchCompetitionClubs", mock.Anything, liga2, season.Label("22/23")).Return([]leaguehistory.Entry{
		{ClubName: "FC Dinamo 1948", ClubID: 312, Season: "22/23", League: "Liga 2"},
	}, nil).Once()

	svc := NewHistoryService([]leaguehistory.Source{superliga, liga2}, source, repo, testIDs, testLogger(), 3)
	summary, err := svc.Harvest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Tasks)
	assert.Equal(t, 2, summary.Resolved)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 3, summary.RowsUpdated)

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []club.Listing{{Name: "FCSB", ID: 301}, {Name: "FC Dinamo 1948", ID: 312}}, leaguehistory.Listings(entries))
}

func TestHistoryServiceHarvestKeepsHistoryWhenEverythingFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	existing := []leaguehistory.Entry{{ClubName: "FCSB", ClubID: 301, Season: "20/21", League: "Superliga"}}
	repo := memory.NewHistoryRepository(existing)
	source := usecasemock.NewCompetitionSource(t)
	source.On("FetchCompetitionClubs", mock.Anything, liga2, season.Label("22/23")).Return(nil, errors.New("blocked")).Once()

	_, err := NewHistoryService([]leaguehistory.Source{liga2}, source, repo, testIDs, testLogger(), 1).Harvest(ctx)
	require.ErrorIs(t, err, ErrDependencyUnavailable)

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, existing, entries)
}

func TestHistoryServiceRequiresSources(t *testing.T) {
	t.Parallel()

	_, err := NewHistoryService(nil, nil, memory.NewHistoryRepository(nil), testIDs, testLogger(), 1).Harvest(context.Background())
	require.ErrorIs(t, err, ErrInvalidInput)
}
