package usecase

import (
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

func int64Ptr(v int64) *int64       { return &v }
func stringPtr(v string) *string    { return &v }
func float64Ptr(v float64) *float64 { return &v }

type fixedIDs struct{ id string }

func (f fixedIDs) NewID() (string, error) { return f.id, nil }

var testIDs = fixedIDs{id: "run-1"}

func testLogger() *logging.Logger { return logging.NewNop() }

func sideOf(name string, id int64, league, country string) transfer.Side {
	return transfer.Side{Club: name, ClubID: int64Ptr(id), League: league, Country: country}
}

func record(pid int64, s string, origin, dest transfer.Side) transfer.Record {
	return transfer.Record{
		PlayerID:    int64Ptr(pid),
		PlayerName:  "Player",
		Season:      season.Label(s),
		Origin:      origin,
		Destination: dest,
		Type:        transfer.TypePermanent,
	}
}
