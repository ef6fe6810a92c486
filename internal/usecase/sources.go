package usecase

import (
	"context"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/player"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
)

// CompetitionSource lists the clubs of one competition season.
type CompetitionSource interface {
	FetchCompetitionClubs(ctx context.Context, src leaguehistory.Source, s season.Label) ([]leaguehistory.Entry, error)
}

// ClubTransferSource returns every arrival and departure row of a club.
type ClubTransferSource interface {
	FetchClubTransfers(ctx context.Context, listing club.Listing) ([]transfer.RawMove, error)
}

// ClubSeasonSource reads the authoritative league and country of a club in
// one season.
type ClubSeasonSource interface {
	FetchClubSeason(ctx context.Context, clubID int64, s season.Label) (leaguehistory.ClubContext, error)
}

// PlayerProfileSource reads a player's biography and transfer history.
type PlayerProfileSource interface {
	FetchPlayerProfile(ctx context.Context, playerID int64) (player.Profile, error)
}
