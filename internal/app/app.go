package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/ro-transfer-hub/external/transfermarkt"
	"github.com/riskibarqy/ro-transfer-hub/internal/config"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/ro-transfer-hub/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/ro-transfer-hub/internal/platform/id"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/resilience"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/validation"
	"github.com/riskibarqy/ro-transfer-hub/internal/usecase"
)

// App holds every pass and view of the pipeline over one store.
type App struct {
	Config config.Config
	Logger *logging.Logger
	Stores *Stores
	Source *transfermarkt.Client

	Aliases    *usecase.AliasService
	History    *usecase.HistoryService
	Build      *usecase.BuildService
	Rescue     *usecase.RescueService
	Enrichment *usecase.EnrichmentService
	Review     *usecase.ReviewService
	Audit      *usecase.AuditService
	Analytics  *usecase.AnalyticsService
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	stores, err := OpenStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	source := transfermarkt.NewClient(transfermarkt.ClientConfig{
		BaseURL:       cfg.TMBaseURL,
		UserAgent:     cfg.TMUserAgent,
		Timeout:       cfg.TMTimeout,
		MaxRetries:    cfg.TMMaxRetries,
		RatePerSecond: cfg.TMRatePerSecond,
		MinDelay:      cfg.TMMinDelay,
		MaxDelay:      cfg.TMMaxDelay,
		PageCacheTTL:  cfg.TMPageCacheTTL,
		Logger:        logger.With("component", "transfermarkt"),
		Breaker: resilience.BreakerConfig{
			Enabled:   cfg.TMCircuitEnabled,
			Threshold: cfg.TMCircuitFailureCount,
			Cooldown:  cfg.TMCircuitOpenTimeout,
		},
	})

	ids := idgen.NewRunIDGenerator()

	// Views read the whole table per request; passes always go to the store.
	var views transfer.Repository = stores.Transfers
	if cfg.CacheEnabled {
		views = cache.NewTransferRepository(stores.Transfers, cfg.CacheTTL)
	}

	aliases := usecase.NewAliasService(stores.Aliases, logger)
	a := &App{
		Config:  cfg,
		Logger:  logger,
		Stores:  stores,
		Source:  source,
		Aliases: aliases,
		History: usecase.NewHistoryService(cfg.LeagueSources, source, stores.History, ids, logger, cfg.ScrapeWorkers),
		Build: usecase.NewBuildService(aliases, stores.History, stores.Transfers, source, ids, logger, usecase.BuildConfig{
			Seasons: cfg.Seasons,
			Workers: cfg.ScrapeWorkers,
		}),
		Rescue: usecase.NewRescueService(source, stores.Transfers, ids, logger, usecase.RescueConfig{
			Workers:         cfg.ScrapeWorkers,
			CheckpointEvery: cfg.CheckpointEvery,
		}),
		Enrichment: usecase.NewEnrichmentService(source, stores.Transfers, ids, logger, usecase.EnrichmentConfig{
			Workers:         cfg.ScrapeWorkers,
			CheckpointEvery: cfg.CheckpointEvery,
		}),
		Review: usecase.NewReviewService(views, stores.Reviews, validation.New(), ids, logger),
		Audit:  usecase.NewAuditService(views, cfg.AuditSimilarity),
		Analytics: usecase.NewAnalyticsService(views, usecase.AnalyticsConfig{
			HomeCountry:  cfg.HomeCountry,
			TopLeague:    cfg.TopLeague,
			SecondLeague: cfg.SecondLeague,
		}),
	}
	return a, nil
}

func (a *App) Close() error {
	return a.Stores.Close()
}

// NewHTTPServer serves the read-only views of a.
func (a *App) NewHTTPServer() (*http.Server, error) {
	handler := httpapi.NewHandler(a.Analytics, a.Review, a.Audit, a.Logger)
	router := httpapi.NewRouter(handler, a.Logger, a.Config.SwaggerEnabled, a.Config.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         a.Config.HTTPAddr,
		Handler:      router,
		ReadTimeout:  a.Config.ReadTimeout,
		WriteTimeout: a.Config.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
