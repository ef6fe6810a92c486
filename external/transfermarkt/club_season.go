package transfermarkt

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

var (
	trailingSeasonRegex = regexp.MustCompile(`\s\d{2}/\d{2}$`)
	trailingYearRegex   = regexp.MustCompile(`\s\d{4}$`)
	whitespaceRegex     = regexp.MustCompile(`\s+`)
)

func (c *Client) clubSeasonURL(clubID int64, s season.Label) string {
	return fmt.Sprintf("%s/club/startseite/verein/%d/saison_id/%d", c.baseURL, clubID, s.StartYear())
}

// FetchClubSeason reads the league table headline and country flag of a
// club's season overview. A page with neither is a parse miss.
func (c *Client) FetchClubSeason(ctx context.Context, clubID int64, s season.Label) (leaguehistory.ClubContext, error) {
	doc, err := c.document(ctx, pageClubSeason, c.clubSeasonURL(clubID, s))
	if err != nil {
		return leaguehistory.ClubContext{}, fmt.Errorf("fetch club season club_id=%d season=%s: %w", clubID, s, err)
	}
	out := parseClubSeason(doc)
	if out.Empty() {
		return out, fmt.Errorf("club season club_id=%d season=%s: %w", clubID, s, ErrParseMiss)
	}
	return out, nil
}

func parseClubSeason(doc *goquery.Document) leaguehistory.ClubContext {
	var out leaguehistory.ClubContext
	doc.Find("h2.content-box-headline").EachWithBreak(func(_ int, h2 *goquery.Selection) bool {
		text := collapseSpace(h2.Text())
		if !strings.Contains(text, "Table section") {
			return true
		}
		text = strings.TrimSpace(strings.ReplaceAll(text, "Table section", ""))
		text = trailingSeasonRegex.ReplaceAllString(text, "")
		text = trailingYearRegex.ReplaceAllString(text, "")
		out.League = strings.TrimSpace(text)
		return false
	})
	if title, ok := doc.Find(".data-header__content img.flaggenrahmen").First().Attr("title"); ok {
		out.Country = strings.TrimSpace(title)
	}
	return out
}

func collapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
