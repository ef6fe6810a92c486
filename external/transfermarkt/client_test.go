package transfermarkt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/resilience"
	"github.com/riskibarqy/ro-transfer-hub/internal/usecase"
)

func newTestClient(t *testing.T, srv *httptest.Server, cfg ClientConfig) *Client {
	t.Helper()
	cfg.BaseURL = srv.URL
	cfg.HTTPClient = srv.Client()
	c := NewClient(cfg)
	c.retry.BaseDelay = time.Millisecond
	c.retry.MaxDelay = time.Millisecond
	c.sleep = func(context.Context, time.Duration) error { return nil }
	return c
}

func TestFetchClubSeasonRetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/club/startseite/verein/301/saison_id/2021", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`<h2 class="content-box-headline">Table section Superliga 21/22</h2>
<span class="data-header__content"><img class="flaggenrahmen" title="Romania"></span>`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv, ClientConfig{MaxRetries: 2})
	got, err := c.FetchClubSeason(context.Background(), 301, "21/22")
	require.NoError(t, err)
	assert.Equal(t, leaguehistory.ClubContext{League: "Superliga", Country: "Romania"}, got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchPlayerProfileBlockedByChallenge(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`<html><head><title>Just a moment... Cloudflare</title></head></html>`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv, ClientConfig{MaxRetries: 3})
	_, err := c.FetchPlayerProfile(context.Background(), 401)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBlocked)
	assert.Equal(t, int32(1), calls.Load(), "blocked pages are not retried")
}

func TestFetchClubSeasonEmptyPageIsParseMiss(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv, ClientConfig{})
	_, err := c.FetchClubSeason(context.Background(), 12, "19/20")
	assert.ErrorIs(t, err, ErrParseMiss)
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv, ClientConfig{
		Breaker: resilience.BreakerConfig{Enabled: true, Threshold: 2, Cooldown: time.Hour},
	})
	for i := 0; i < 2; i++ {
		_, err := c.FetchPlayerProfile(context.Background(), int64(i+1))
		assert.ErrorIs(t, err, ErrTransient)
	}

	_, err := c.FetchPlayerProfile(context.Background(), 3)
	assert.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPageCacheServesRepeatedFetches(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(competitionHTML))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv, ClientConfig{PageCacheTTL: time.Minute})
	src := leaguehistory.Source{League: "Superliga", Code: "RO1", Slug: "superliga"}
	for i := 0; i < 3; i++ {
		entries, err := c.FetchCompetitionClubs(context.Background(), src, "23/24")
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestNotFoundIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv, ClientConfig{MaxRetries: 3})
	_, err := c.FetchClubSeason(context.Background(), 99, "24/25")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDelayOverride(t *testing.T) {
	t.Parallel()

	c := NewClient(ClientConfig{MinDelay: 3 * time.Second, MaxDelay: time.Second})
	for kind := range defaultDelays {
		assert.Equal(t, delayRange{min: time.Second, max: time.Second}, c.delays[kind])
	}
	assert.Equal(t, 500*time.Millisecond, NewClient(ClientConfig{}).delays[pageCompetition].min)
}
