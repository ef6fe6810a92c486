package review

import (
	"context"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

// Item is one unresolved (club id, season) context offered for manual
// curation. A reviewer fills NewLeague and, when blank, ExistingCountry.
type Item struct {
	ClubID          int64        `json:"club_id" validate:"gt=0"`
	ClubName        string       `json:"club_name"`
	Season          season.Label `json:"season" validate:"season"`
	ExistingCountry string       `json:"existing_country"`
	Occurrences     int          `json:"occurrences" validate:"gte=0"`
	NewLeague       string       `json:"new_league" validate:"required"`
}

// Store keeps the review report outside the base table.
type Store interface {
	WriteItems(ctx context.Context, items []Item) error
	ReadItems(ctx context.Context) ([]Item, error)
}
