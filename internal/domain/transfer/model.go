package transfer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

var ErrMalformedID = errors.New("malformed identifier")

// UnresolvedLeague marks a league that no source has provided yet.
const UnresolvedLeague = "TBD"

type Type string

const (
	TypePermanent Type = "Permanent"
	TypeLoan      Type = "Loan"
	TypeFree      Type = "Free Transfer"
)

type Role string

const (
	RoleOrigin      Role = "origin"
	RoleDestination Role = "destination"
)

var Roles = [...]Role{RoleOrigin, RoleDestination}

// Side is one end of a move: the club and the competition context it was in
// during the record's season.
type Side struct {
	Club    string
	ClubID  *int64
	League  string
	Country string
}

// LeagueResolved reports whether League holds a real value.
func (s Side) LeagueResolved() bool { return !IsUnresolvedLeague(s.League) }

// CountryResolved reports whether Country holds a real value.
func (s Side) CountryResolved() bool { return !IsUnresolvedCountry(s.Country) }

// Record is one player move between two clubs in a season. Enrichment
// fields are nil until a source provides them.
type Record struct {
	PlayerID    *int64
	PlayerName  string
	Season      season.Label
	Origin      Side
	Destination Side
	FeeRaw      string
	FeeEstM     float64
	Type        Type

	DateOfBirth           *string
	Citizenship           *string
	MarketValueAtTransfer *float64
	MarketValueNextSeason *float64
}

// Key identifies a record for deduplication and upserts.
type Key struct {
	PlayerID    string
	Season      season.Label
	Origin      string
	Destination string
}

func (k Key) String() string {
	return k.PlayerID + "|" + string(k.Season) + "|" + k.Origin + "|" + k.Destination
}

func (r Record) Key() Key {
	pid := ""
	if r.PlayerID != nil {
		pid = strconv.FormatInt(*r.PlayerID, 10)
	}
	return Key{PlayerID: pid, Season: r.Season, Origin: r.Origin.Club, Destination: r.Destination.Club}
}

func (r *Record) Side(role Role) *Side {
	if role == RoleDestination {
		return &r.Destination
	}
	return &r.Origin
}

// NeedsEnrichment reports whether any player-sourced field is still missing.
func (r Record) NeedsEnrichment() bool {
	return r.DateOfBirth == nil || r.Citizenship == nil ||
		r.MarketValueAtTransfer == nil || r.MarketValueNextSeason == nil
}

// HasPlayerID reports whether the record carries a usable player id.
func (r Record) HasPlayerID() bool {
	return r.PlayerID != nil && *r.PlayerID != 0
}

var unresolvedLeagues = map[string]struct{}{"": {}, "TBD": {}, "Unknown": {}, "nan": {}}

// IsUnresolvedLeague reports whether v is blank or a placeholder.
func IsUnresolvedLeague(v string) bool {
	_, ok := unresolvedLeagues[strings.TrimSpace(v)]
	return ok
}

// IsUnresolvedCountry reports whether v is blank or a placeholder.
func IsUnresolvedCountry(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == "nan"
}

// ParseID reads an optional numeric identifier. Blank input is a nil id; a
// non-numeric value is ErrMalformedID. Float renderings such as "301.0" are
// accepted because spreadsheet round trips produce them.
func ParseID(raw string) (*int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "nan" || s == "None" {
		return nil, nil
	}
	s = strings.TrimSuffix(s, ".0")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedID, raw)
	}
	return &n, nil
}

// Direction is the scrape direction relative to the focus club.
type Direction string

const (
	Arrival   Direction = "arrival"
	Departure Direction = "departure"
)

// RawMove is one row of a club's arrivals or departures table.
type RawMove struct {
	FocusClub     string
	FocusClubID   *int64
	Direction     Direction
	Season        season.Label
	PlayerName    string
	PlayerID      *int64
	PartnerClub   string
	PartnerClubID *int64
	FeeText       string
}
