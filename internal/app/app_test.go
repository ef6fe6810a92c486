package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ro-transfer-hub/internal/config"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/csvstore"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

func testConfig(t *testing.T, driver string) config.Config {
	t.Helper()
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		HomeCountry:        "Romania",
		TopLeague:          "Superliga",
		SecondLeague:       "Liga 2",
		StoreDriver:        driver,
		DataDir:            t.TempDir(),
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		LeagueSources:      config.DefaultLeagueSources(),
		Seasons:            config.SeasonsOf(config.DefaultLeagueSources()),
		TMTimeout:          time.Second,
		ScrapeWorkers:      1,
		CheckpointEvery:    10,
		AuditSimilarity:    0.92,
	}
}

func TestNewMemoryAppServesHealthz(t *testing.T) {
	a, err := New(context.Background(), testConfig(t, config.StoreMemory), logging.NewNop())
	require.NoError(t, err)
	defer a.Close()

	aliases, err := a.Stores.Aliases.ListAliases(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, aliases)

	srv, err := a.NewHTTPServer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOpenStoresCSVUsesDataDir(t *testing.T) {
	cfg := testConfig(t, config.StoreCSV)
	stores, err := OpenStores(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	records, err := stores.Transfers.ListRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	_, ok := stores.Reviews.(*csvstore.ReviewStore)
	assert.True(t, ok)
	assert.NoError(t, stores.Close())
}

func TestNewHTTPServerRequiresAddr(t *testing.T) {
	cfg := testConfig(t, config.StoreMemory)
	cfg.HTTPAddr = ""
	a, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	_, err = a.NewHTTPServer()
	assert.Error(t, err)
}
