package transfermarkt

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/player"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
)

var birthDateRegex = regexp.MustCompile(`\d{2}/\d{2}/\d{4}|\d{4}-\d{2}-\d{2}`)

func (c *Client) playerURL(playerID int64) string {
	return fmt.Sprintf("%s/player/transfers/spieler/%d", c.baseURL, playerID)
}

// FetchPlayerProfile reads a player's transfer page: header biography,
// current market value and the transfer history grid, newest first.
func (c *Client) FetchPlayerProfile(ctx context.Context, playerID int64) (player.Profile, error) {
	doc, err := c.document(ctx, pagePlayer, c.playerURL(playerID))
	if err != nil {
		return player.Profile{}, fmt.Errorf("fetch player player_id=%d: %w", playerID, err)
	}
	profile := parsePlayer(doc)
	profile.ID = playerID
	if !profile.HasBio() {
		c.logger.WarnContext(ctx, "player biography not found", "player_id", playerID)
	}
	if len(profile.History) == 0 {
		c.logger.DebugContext(ctx, "player transfer history empty", "player_id", playerID)
	}
	return profile, nil
}

func parsePlayer(doc *goquery.Document) player.Profile {
	var p player.Profile
	p.Name = collapseSpace(doc.Find("h1.data-header__headline-wrapper").First().Text())

	doc.Find("li.data-header__label").Each(func(_ int, item *goquery.Selection) {
		label := item.Text()
		value := item.Find("span.data-header__content").First()
		if value.Length() == 0 {
			return
		}
		switch {
		case strings.Contains(label, "Date of birth"):
			if dob := birthDateRegex.FindString(value.Text()); dob != "" {
				p.DateOfBirth = &dob
			} else if dob := birthDateRegex.FindString(value.Find(`span[itemprop="birthDate"]`).Text()); dob != "" {
				p.DateOfBirth = &dob
			}
		case strings.Contains(label, "Citizenship"):
			var titles []string
			value.Find("img.flaggenrahmen").Each(func(_ int, img *goquery.Selection) {
				if title, ok := img.Attr("title"); ok && strings.TrimSpace(title) != "" {
					titles = append(titles, strings.TrimSpace(title))
				}
			})
			citizenship := strings.Join(titles, " / ")
			if citizenship == "" {
				citizenship = collapseSpace(value.Text())
			}
			if citizenship != "" {
				p.Citizenship = &citizenship
			}
		}
	})

	if v := doc.Find("div.current-value").First(); v.Length() > 0 {
		p.CurrentMarketValue = transfer.ParseFee(strings.TrimSpace(v.Text()))
	}
	if p.CurrentMarketValue == 0 {
		if v := doc.Find(".data-header__market-value-wrapper").First(); v.Length() > 0 {
			p.CurrentMarketValue = transfer.ParseFee(strings.TrimSpace(v.Text()))
		}
	}

	doc.Find(".tm-player-transfer-history-grid").Each(func(_ int, grid *goquery.Selection) {
		if grid.HasClass("tm-player-transfer-history-grid--heading") || grid.HasClass("tm-player-transfer-history-grid--sum") {
			return
		}
		seasonText := strings.TrimSpace(grid.Find(".tm-player-transfer-history-grid__season").First().Text())
		if !seasonRegex.MatchString(seasonText) {
			return
		}
		value := "-"
		if mv := grid.Find(".tm-player-transfer-history-grid__market-value").First(); mv.Length() > 0 {
			value = strings.TrimSpace(mv.Text())
		}
		oldClub := strings.TrimSpace(grid.Find(".tm-player-transfer-history-grid__old-club .tm-player-transfer-history-grid__club-link").First().Text())
		p.History = append(p.History, player.NewHistoryEntry(seasonText, transfer.ParseFee(value), oldClub))
	})
	return p
}
