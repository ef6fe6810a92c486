package httpapi

import (
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/usecase"
)

type listDTO[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type sideDTO struct {
	Club    string `json:"club"`
	ClubID  *int64 `json:"club_id,omitempty"`
	League  string `json:"league"`
	Country string `json:"country"`
	Label   string `json:"label"`
}

type transferDTO struct {
	PlayerID              *int64   `json:"player_id,omitempty"`
	Player                string   `json:"player"`
	Season                string   `json:"season"`
	Origin                sideDTO  `json:"origin"`
	Destination           sideDTO  `json:"destination"`
	FeeRaw                string   `json:"fee_raw"`
	FeeEstM               float64  `json:"fee_est_m"`
	Type                  string   `json:"type"`
	UIType                string   `json:"ui_type"`
	Migration             string   `json:"migration"`
	Age                   *int     `json:"age,omitempty"`
	DateOfBirth           *string  `json:"date_of_birth,omitempty"`
	Citizenship           *string  `json:"citizenship,omitempty"`
	MarketValueAtTransfer *float64 `json:"market_value_at_transfer,omitempty"`
	MarketValueNextSeason *float64 `json:"market_value_next_season,omitempty"`
}

func sideToDTO(s transfer.Side, label string) sideDTO {
	return sideDTO{
		Club:    s.Club,
		ClubID:  s.ClubID,
		League:  s.League,
		Country: s.Country,
		Label:   label,
	}
}

func transferToDTO(e usecase.EnrichedRecord) transferDTO {
	return transferDTO{
		PlayerID:              e.PlayerID,
		Player:                e.PlayerName,
		Season:                e.Season.String(),
		Origin:                sideToDTO(e.Origin, e.OriginLabel),
		Destination:           sideToDTO(e.Destination, e.DestinationLabel),
		FeeRaw:                e.FeeRaw,
		FeeEstM:               e.FeeEstM,
		Type:                  string(e.Type),
		UIType:                e.UIType,
		Migration:             string(e.Migration),
		Age:                   e.Age,
		DateOfBirth:           e.DateOfBirth,
		Citizenship:           e.Citizenship,
		MarketValueAtTransfer: e.MarketValueAtTransfer,
		MarketValueNextSeason: e.MarketValueNextSeason,
	}
}
