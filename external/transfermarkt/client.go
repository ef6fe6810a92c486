package transfermarkt

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/ro-transfer-hub/internal/platform/cache"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/resilience"
	"github.com/riskibarqy/ro-transfer-hub/internal/usecase"
)

const (
	defaultBaseURL   = "https://www.transfermarkt.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	maxPageBytes     = 8 << 20
)

var (
	ErrBlocked   = crerr.New("transfermarkt: request blocked by challenge page")
	ErrTransient = crerr.New("transfermarkt: transient failure")
	ErrParseMiss = fmt.Errorf("transfermarkt: expected page element missing: %w", usecase.ErrParseMiss)
	ErrNotFound  = crerr.New("transfermarkt: page not found")
)

type pageKind string

const (
	pageCompetition   pageKind = "competition"
	pageClubTransfers pageKind = "club_transfers"
	pageClubSeason    pageKind = "club_season"
	pagePlayer        pageKind = "player"
)

type delayRange struct {
	min time.Duration
	max time.Duration
}

// defaultDelays is the pause taken after each page of a kind.
var defaultDelays = map[pageKind]delayRange{
	pageCompetition:   {min: 500 * time.Millisecond, max: 500 * time.Millisecond},
	pageClubTransfers: {min: time.Second, max: 2 * time.Second},
	pageClubSeason:    {min: time.Second, max: 2 * time.Second},
	pagePlayer:        {min: 800 * time.Millisecond, max: 1200 * time.Millisecond},
}

type ClientConfig struct {
	HTTPClient    *http.Client
	BaseURL       string
	UserAgent     string
	Timeout       time.Duration
	MaxRetries    int
	RatePerSecond float64
	// MinDelay and MaxDelay replace the per-page pause when MaxDelay > 0.
	MinDelay     time.Duration
	MaxDelay     time.Duration
	PageCacheTTL time.Duration
	Logger       *logging.Logger
	Breaker      resilience.BreakerConfig
}

// Client reads and parses public Transfermarkt pages. It implements the
// competition, club transfer, club season and player profile sources.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	retry      resilience.RetryPolicy
	breaker    *resilience.Breaker
	pages      *cache.Store[string]
	delays     map[pageKind]delayRange
	logger     *logging.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	delays := defaultDelays
	if cfg.MaxDelay > 0 {
		override := delayRange{min: min(cfg.MinDelay, cfg.MaxDelay), max: cfg.MaxDelay}
		delays = make(map[pageKind]delayRange, len(defaultDelays))
		for kind := range defaultDelays {
			delays[kind] = override
		}
	}

	var pages *cache.Store[string]
	if cfg.PageCacheTTL > 0 {
		pages = cache.NewStore[string](cfg.PageCacheTTL)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(limit, 1),
		retry: resilience.RetryPolicy{
			MaxRetries: max(cfg.MaxRetries, 0),
			BaseDelay:  time.Second,
			MaxDelay:   10 * time.Second,
			Retryable:  isTransient,
		},
		breaker: resilience.NewBreaker(cfg.Breaker),
		pages:   pages,
		delays:  delays,
		logger:  logger.With("component", "transfermarkt"),
		sleep:   resilience.Sleep,
	}
}

// document fetches a page and parses it. Pages are shared through the page
// cache when one is configured.
func (c *Client) document(ctx context.Context, kind pageKind, pageURL string) (*goquery.Document, error) {
	load := func(ctx context.Context) (string, error) {
		return c.load(ctx, kind, pageURL)
	}

	var (
		body string
		err  error
	)
	if c.pages != nil {
		body, err = c.pages.GetOrLoad(ctx, pageURL, load)
	} else {
		body, err = load(ctx)
	}
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, crerr.Wrapf(ErrParseMiss, "parse %s page: %v", kind, err)
	}
	return doc, nil
}

func (c *Client) load(ctx context.Context, kind pageKind, pageURL string) (string, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "transfermarkt circuit breaker rejected request", "state", c.breaker.State(), "kind", kind)
		return "", fmt.Errorf("%w: transfermarkt is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	var body string
	err := resilience.Retry(ctx, c.retry, func(attempt int) error {
		var reqErr error
		body, reqErr = c.get(ctx, pageURL)
		if reqErr != nil && attempt < c.retry.MaxRetries && isTransient(reqErr) {
			c.logger.DebugContext(ctx, "retrying transfermarkt request", "url", pageURL, "attempt", attempt+1, "error", reqErr)
		}
		return reqErr
	})
	if isBreakerFailure(err) {
		c.breaker.Failure()
	} else {
		c.breaker.Success()
	}
	if err != nil {
		return "", err
	}

	if err := c.pause(ctx, kind); err != nil {
		return "", err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, pageURL string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", crerr.Wrapf(ErrTransient, "send request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", crerr.Wrapf(ErrTransient, "read response body: %v", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", crerr.Wrapf(ErrNotFound, "url=%s", pageURL)
	case resp.StatusCode == http.StatusForbidden:
		return "", crerr.Wrapf(ErrBlocked, "status=%d url=%s", resp.StatusCode, pageURL)
	case isRetryableStatus(resp.StatusCode):
		return "", crerr.Wrapf(ErrTransient, "status=%d url=%s", resp.StatusCode, pageURL)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", fmt.Errorf("transfermarkt status=%d url=%s", resp.StatusCode, pageURL)
	}

	body := string(raw)
	if isChallengePage(body) {
		return "", crerr.Wrapf(ErrBlocked, "challenge page url=%s", pageURL)
	}
	return body, nil
}

func (c *Client) pause(ctx context.Context, kind pageKind) error {
	d, ok := c.delays[kind]
	if !ok || d.max <= 0 {
		return nil
	}
	wait := d.min
	if d.max > d.min {
		wait += time.Duration(rand.Int64N(int64(d.max - d.min)))
	}
	return c.sleep(ctx, wait)
}

func isChallengePage(body string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return false
	}
	title := doc.Find("title").First().Text()
	return strings.Contains(title, "Challenge") || strings.Contains(title, "Cloudflare")
}

func isTransient(err error) bool {
	return crerr.Is(err, ErrTransient)
}

func isBreakerFailure(err error) bool {
	return crerr.Is(err, ErrTransient) || crerr.Is(err, ErrBlocked)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}
