package transfermarkt

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
)

var (
	seasonRegex   = regexp.MustCompile(`\d{2}/\d{2}`)
	playerIDRegex = regexp.MustCompile(`/spieler/(\d+)`)
)

// FetchClubTransfers reads every arrivals and departures box of a club's
// all-transfers page. Season filtering is left to the caller.
func (c *Client) FetchClubTransfers(ctx context.Context, listing club.Listing) ([]transfer.RawMove, error) {
	pageURL := strings.TrimSpace(listing.TransferURL)
	if pageURL == "" {
		pageURL = c.clubTransfersURL("club", listing.ID)
	}
	doc, err := c.document(ctx, pageClubTransfers, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch transfers club_id=%d: %w", listing.ID, err)
	}
	return parseClubTransfers(doc, listing), nil
}

func parseClubTransfers(doc *goquery.Document, listing club.Listing) []transfer.RawMove {
	focusID := listing.ID
	var moves []transfer.RawMove
	doc.Find("div.box").Each(func(_ int, box *goquery.Selection) {
		headline := box.Find("h2.content-box-headline").First()
		if headline.Length() == 0 {
			return
		}
		text := strings.TrimSpace(headline.Text())
		label := seasonRegex.FindString(text)
		if label == "" {
			return
		}

		var direction transfer.Direction
		switch {
		case strings.Contains(text, "Arrivals") || strings.Contains(text, "Zugänge"):
			direction = transfer.Arrival
		case strings.Contains(text, "Departures") || strings.Contains(text, "Abgänge"):
			direction = transfer.Departure
		default:
			return
		}

		box.Find("table").First().Find("tbody > tr").Each(func(_ int, row *goquery.Selection) {
			playerLink := row.Find("td.hauptlink a").First()
			if playerLink.Length() == 0 {
				return
			}
			partner := row.Find("td.no-border-links").First()
			if partner.Length() == 0 {
				return
			}

			move := transfer.RawMove{
				FocusClub:   listing.Name,
				FocusClubID: &focusID,
				Direction:   direction,
				Season:      season.Label(label),
				PlayerName:  strings.TrimSpace(playerLink.Text()),
				PartnerClub: strings.TrimSpace(partner.Text()),
				FeeText:     "-",
			}
			if href, ok := playerLink.Attr("href"); ok {
				if m := playerIDRegex.FindStringSubmatch(href); m != nil {
					if id, err := strconv.ParseInt(m[1], 10, 64); err == nil {
						move.PlayerID = &id
					}
				}
			}
			if href, ok := partner.Find("a").First().Attr("href"); ok {
				if id, ok := clubIDFromHref(href); ok {
					move.PartnerClubID = &id
				}
			}
			if fee := row.Find("td.rechts").First(); fee.Length() > 0 {
				move.FeeText = strings.TrimSpace(fee.Text())
			}
			moves = append(moves, move)
		})
	})
	return moves
}
