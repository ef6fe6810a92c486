package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

const (
	StoreCSV      = "csv"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config stores runtime configuration for the CLI and the API.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	LogLevel                   logging.Level
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	CORSAllowedOrigins         []string
	SwaggerEnabled             bool
	HomeCountry                string
	TopLeague                  string
	SecondLeague               string
	StoreDriver                string
	DataDir                    string
	AliasFile                  string
	DBURL                      string
	DBDisablePreparedBinary    bool
	CacheEnabled               bool
	CacheTTL                   time.Duration
	LeagueSourcesFile          string
	LeagueSources              []leaguehistory.Source
	Seasons                    []season.Label
	TMBaseURL                  string
	TMUserAgent                string
	TMTimeout                  time.Duration
	TMMaxRetries               int
	TMRatePerSecond            float64
	TMMinDelay                 time.Duration
	TMMaxDelay                 time.Duration
	TMPageCacheTTL             time.Duration
	TMCircuitEnabled           bool
	TMCircuitFailureCount      int
	TMCircuitOpenTimeout       time.Duration
	ScrapeWorkers              int
	CheckpointEvery            int
	AuditSimilarity            float64
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	storeDriver, err := parseStoreDriver(getEnv("STORE_DRIVER", StoreCSV))
	if err != nil {
		return Config{}, err
	}
	dataDir := strings.TrimSpace(getEnv("DATA_DIR", "data"))
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storeDriver == StorePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORE_DRIVER=%s", StorePostgres)
	}
	dbDisablePreparedBinary, err := getEnvAsBool("DB_DISABLE_PREPARED_BINARY_RESULT", true)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := getEnvAsBool("CACHE_ENABLED", true)
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := getEnvAsDuration("CACHE_TTL", 60*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	corsOrigins := splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	if len(corsOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	leagueSourcesFile := strings.TrimSpace(getEnv("LEAGUE_SOURCES_FILE", ""))
	leagueSources, err := LoadLeagueSources(leagueSourcesFile)
	if err != nil {
		return Config{}, err
	}

	tmTimeout, err := getEnvAsDuration("TM_TIMEOUT", 20*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse TM_TIMEOUT: %w", err)
	}
	if tmTimeout <= 0 {
		return Config{}, fmt.Errorf("TM_TIMEOUT must be > 0")
	}
	tmMaxRetries, err := getEnvAsInt("TM_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse TM_MAX_RETRIES: %w", err)
	}
	if tmMaxRetries < 0 {
		return Config{}, fmt.Errorf("TM_MAX_RETRIES must be >= 0")
	}
	tmRate, err := getEnvAsFloat("TM_RATE_PER_SECOND", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse TM_RATE_PER_SECOND: %w", err)
	}
	if tmRate < 0 {
		return Config{}, fmt.Errorf("TM_RATE_PER_SECOND must be >= 0")
	}
	tmMinDelay, err := getEnvAsDuration("TM_MIN_DELAY", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse TM_MIN_DELAY: %w", err)
	}
	tmMaxDelay, err := getEnvAsDuration("TM_MAX_DELAY", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse TM_MAX_DELAY: %w", err)
	}
	if tmMinDelay < 0 || tmMaxDelay < 0 || (tmMaxDelay > 0 && tmMinDelay > tmMaxDelay) {
		return Config{}, fmt.Errorf("TM_MIN_DELAY and TM_MAX_DELAY must satisfy 0 <= min <= max")
	}
	tmPageCacheTTL, err := getEnvAsDuration("TM_PAGE_CACHE_TTL", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse TM_PAGE_CACHE_TTL: %w", err)
	}
	tmCircuitEnabled, err := getEnvAsBool("TM_CIRCUIT_ENABLED", true)
	if err != nil {
		return Config{}, fmt.Errorf("parse TM_CIRCUIT_ENABLED: %w", err)
	}
	tmCircuitFailureCount, err := getEnvAsInt("TM_CIRCUIT_FAILURE_COUNT", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse TM_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if tmCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("TM_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	tmCircuitOpenTimeout, err := getEnvAsDuration("TM_CIRCUIT_OPEN_TIMEOUT", time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("parse TM_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if tmCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("TM_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	scrapeWorkers, err := getEnvAsInt("SCRAPE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_WORKERS: %w", err)
	}
	if scrapeWorkers < 1 {
		return Config{}, fmt.Errorf("SCRAPE_WORKERS must be >= 1")
	}
	checkpointEvery, err := getEnvAsInt("CHECKPOINT_EVERY", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse CHECKPOINT_EVERY: %w", err)
	}
	if checkpointEvery < 1 {
		return Config{}, fmt.Errorf("CHECKPOINT_EVERY must be >= 1")
	}
	auditSimilarity, err := getEnvAsFloat("AUDIT_SIMILARITY", 0.92)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUDIT_SIMILARITY: %w", err)
	}
	if auditSimilarity <= 0 || auditSimilarity > 1 {
		return Config{}, fmt.Errorf("AUDIT_SIMILARITY must be in (0, 1]")
	}

	pprofEnabled, err := getEnvAsBool("PPROF_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	uptraceEnabled, err := getEnvAsBool("UPTRACE_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := getEnvAsBool("UPTRACE_LOGS_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := getEnvAsBool("PYROSCOPE_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "ro-transfer-hub"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                   logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		HTTPAddr:                   getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		CORSAllowedOrigins:         corsOrigins,
		SwaggerEnabled:             swaggerEnabled,
		HomeCountry:                strings.TrimSpace(getEnv("HOME_COUNTRY", "Romania")),
		TopLeague:                  strings.TrimSpace(getEnv("TOP_LEAGUE", "Superliga")),
		SecondLeague:               strings.TrimSpace(getEnv("SECOND_LEAGUE", "Liga 2")),
		StoreDriver:                storeDriver,
		DataDir:                    dataDir,
		AliasFile:                  strings.TrimSpace(getEnv("ALIAS_FILE", "")),
		DBURL:                      dbURL,
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		CacheEnabled:               cacheEnabled,
		CacheTTL:                   cacheTTL,
		LeagueSourcesFile:          leagueSourcesFile,
		LeagueSources:              leagueSources,
		Seasons:                    SeasonsOf(leagueSources),
		TMBaseURL:                  strings.TrimSpace(getEnv("TM_BASE_URL", "https://www.transfermarkt.com")),
		TMUserAgent:                strings.TrimSpace(getEnv("TM_USER_AGENT", "")),
		TMTimeout:                  tmTimeout,
		TMMaxRetries:               tmMaxRetries,
		TMRatePerSecond:            tmRate,
		TMMinDelay:                 tmMinDelay,
		TMMaxDelay:                 tmMaxDelay,
		TMPageCacheTTL:             tmPageCacheTTL,
		TMCircuitEnabled:           tmCircuitEnabled,
		TMCircuitFailureCount:      tmCircuitFailureCount,
		TMCircuitOpenTimeout:       tmCircuitOpenTimeout,
		ScrapeWorkers:              scrapeWorkers,
		CheckpointEvery:            checkpointEvery,
		AuditSimilarity:            auditSimilarity,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.HomeCountry == "" {
		return Config{}, fmt.Errorf("HOME_COUNTRY cannot be empty")
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(value, 64)
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseBool(value)
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return time.ParseDuration(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseStoreDriver(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case StoreCSV, StorePostgres, StoreMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid STORE_DRIVER %q: valid values are %s, %s, %s", v, StoreCSV, StorePostgres, StoreMemory)
	}
}
