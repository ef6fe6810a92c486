package postgres

import (
	"database/sql"
	"time"
)

type transferTableModel struct {
	RecordKey             string          `db:"record_key"`
	PlayerID              sql.NullInt64   `db:"player_id"`
	PlayerName            string          `db:"player_name"`
	Season                string          `db:"season"`
	OriginClub            string          `db:"origin_club"`
	OriginClubID          sql.NullInt64   `db:"origin_club_id"`
	OriginLeague          string          `db:"origin_league"`
	OriginCountry         string          `db:"origin_country"`
	DestinationClub       string          `db:"destination_club"`
	DestinationClubID     sql.NullInt64   `db:"destination_club_id"`
	DestinationLeague     string          `db:"destination_league"`
	DestinationCountry    string          `db:"destination_country"`
	FeeRaw                string          `db:"fee_raw"`
	FeeEstM               float64         `db:"fee_est_m"`
	TransferType          string          `db:"transfer_type"`
	DateOfBirth           sql.NullString  `db:"date_of_birth"`
	Citizenship           sql.NullString  `db:"citizenship"`
	MarketValueAtTransfer sql.NullFloat64 `db:"market_value_at_transfer"`
	MarketValueNextSeason sql.NullFloat64 `db:"market_value_next_season"`
	Position              int64           `db:"position"`
}

// transferReadModel adds the server-maintained columns to the select list.
type transferReadModel struct {
	ID int64 `db:"id"`
	transferTableModel
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type clubAliasTableModel struct {
	Variant  string `db:"variant_name"`
	Standard string `db:"standard_name"`
}

type leagueHistoryTableModel struct {
	ClubName    string `db:"club_name"`
	ClubID      int64  `db:"club_id"`
	Season      string `db:"season"`
	League      string `db:"league"`
	TransferURL string `db:"transfer_url"`
	Position    int64  `db:"position"`
}
