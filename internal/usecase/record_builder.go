package usecase

import (
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
)

// RecordBuilder turns scraped club tables into canonical transfer records.
type RecordBuilder struct {
	normalizer *club.Normalizer
	resolver   *leaguehistory.Resolver
	seasons    season.Set
}

func NewRecordBuilder(normalizer *club.Normalizer, resolver *leaguehistory.Resolver, seasons season.Set) *RecordBuilder {
	return &RecordBuilder{normalizer: normalizer, resolver: resolver, seasons: seasons}
}

// Build maps every move in a relevant season to a record. An arrival puts the
// focus club at the destination, a departure at the origin. Later records
// with an already seen key are dropped.
func (b *RecordBuilder) Build(moves []transfer.RawMove) []transfer.Record {
	out := make([]transfer.Record, 0, len(moves))
	for _, m := range moves {
		if !b.seasons.Contains(m.Season) {
			continue
		}
		out = append(out, b.record(m))
	}
	return transfer.Dedupe(out)
}

func (b *RecordBuilder) record(m transfer.RawMove) transfer.Record {
	focus := b.side(m.FocusClub, m.FocusClubID, m.Season)
	partner := b.side(m.PartnerClub, m.PartnerClubID, m.Season)

	r := transfer.Record{
		PlayerID:   m.PlayerID,
		PlayerName: m.PlayerName,
		Season:     m.Season,
		FeeRaw:     transfer.CleanFeeRaw(m.FeeText),
		FeeEstM:    transfer.ParseFee(m.FeeText),
		Type:       transfer.ClassifyType(m.FeeText),
	}
	if m.Direction == transfer.Arrival {
		r.Origin, r.Destination = partner, focus
	} else {
		r.Origin, r.Destination = focus, partner
	}
	return r
}

func (b *RecordBuilder) side(raw string, id *int64, s season.Label) transfer.Side {
	canonical := b.normalizer.Normalize(raw)
	return transfer.Side{
		Club:   canonical,
		ClubID: id,
		League: b.resolver.League(canonical, s),
	}
}
