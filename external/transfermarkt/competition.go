package transfermarkt

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

var clubIDRegex = regexp.MustCompile(`/verein/(\d+)`)

func (c *Client) competitionURL(src leaguehistory.Source, s season.Label) string {
	return fmt.Sprintf("%s/%s/startseite/wettbewerb/%s/saison_id/%d", c.baseURL, src.Slug, src.Code, s.StartYear())
}

func (c *Client) clubTransfersURL(slug string, clubID int64) string {
	return fmt.Sprintf("%s/%s/alletransfers/verein/%d", c.baseURL, slug, clubID)
}

// FetchCompetitionClubs lists the clubs on a competition's season table.
func (c *Client) FetchCompetitionClubs(ctx context.Context, src leaguehistory.Source, s season.Label) ([]leaguehistory.Entry, error) {
	doc, err := c.document(ctx, pageCompetition, c.competitionURL(src, s))
	if err != nil {
		return nil, fmt.Errorf("fetch competition %s %s: %w", src.Code, s, err)
	}
	entries, err := c.parseCompetition(doc, src.League, s)
	if err != nil {
		return nil, fmt.Errorf("parse competition %s %s: %w", src.Code, s, err)
	}
	return entries, nil
}

func (c *Client) parseCompetition(doc *goquery.Document, league string, s season.Label) ([]leaguehistory.Entry, error) {
	table := doc.Find("table.items").First()
	if table.Length() == 0 {
		return nil, ErrParseMiss
	}

	var entries []leaguehistory.Entry
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a.vereinprofil_tooltip").First()
		if link.Length() == 0 {
			link = row.Find(`a[href*="/verein/"]`).First()
		}
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		id, ok := clubIDFromHref(href)
		if !ok {
			return
		}
		slug := strings.Split(strings.Trim(href, "/"), "/")[0]

		name, ok := link.Attr("title")
		if !ok || strings.TrimSpace(name) == "" {
			name = slug
		}
		entries = append(entries, leaguehistory.Entry{
			ClubName:    strings.TrimSpace(strings.ReplaceAll(name, "â", "a")),
			ClubID:      id,
			Season:      s,
			League:      league,
			TransferURL: c.clubTransfersURL(slug, id),
		})
	})
	return entries, nil
}

func clubIDFromHref(href string) (int64, bool) {
	m := clubIDRegex.FindStringSubmatch(href)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
