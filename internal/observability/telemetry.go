// Package observability starts the optional tracing and profiling backends
// shared by the CLI passes and the HTTP API.
package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"github.com/grafana/pyroscope-go"
	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/riskibarqy/ro-transfer-hub/internal/config"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

const pprofShutdownTimeout = 5 * time.Second

// stopFunc releases one backend. Nil means nothing was started.
type stopFunc func(context.Context) error

type backend struct {
	name  string
	start func(config.Config, *logging.Logger) (stopFunc, error)
}

var backends = []backend{
	{name: "uptrace", start: startTracing},
	{name: "pyroscope", start: startProfiling},
	{name: "pprof", start: startPprof},
}

// Start brings up every enabled backend in order. The returned func stops
// them in reverse order and only logs failures. If a backend fails to
// start, the ones already running are stopped before returning.
func Start(cfg config.Config, logger *logging.Logger) (func(context.Context), error) {
	if logger == nil {
		logger = logging.Default()
	}

	type running struct {
		name string
		stop stopFunc
	}
	var started []running

	stopAll := func(ctx context.Context) {
		for i := len(started) - 1; i >= 0; i-- {
			if err := started[i].stop(ctx); err != nil {
				logger.Warn("stop telemetry backend failed", "backend", started[i].name, "error", err)
			}
		}
	}

	for _, b := range backends {
		stop, err := b.start(cfg, logger)
		if err != nil {
			stopAll(context.Background())
			return nil, fmt.Errorf("start %s: %w", b.name, err)
		}
		if stop != nil {
			started = append(started, running{name: b.name, stop: stop})
		}
	}
	return stopAll, nil
}

func startTracing(cfg config.Config, logger *logging.Logger) (stopFunc, error) {
	switch {
	case !cfg.UptraceEnabled:
		logger.Debug("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return nil, nil
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return nil, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)
	logger.Info("uptrace enabled", "service_name", cfg.ServiceName, "environment", cfg.AppEnv)
	return uptrace.Shutdown, nil
}

func startProfiling(cfg config.Config, logger *logging.Logger) (stopFunc, error) {
	if !cfg.PyroscopeEnabled {
		logger.Debug("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return nil, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              profileTags(cfg),
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return nil, err
	}
	logger.Info("pyroscope enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)
	return func(context.Context) error { return profiler.Stop() }, nil
}

func profileTags(cfg config.Config) map[string]string {
	return map[string]string{
		"env":     cfg.AppEnv,
		"service": cfg.ServiceName,
		"store":   cfg.StoreDriver,
	}
}

func startPprof(cfg config.Config, logger *logging.Logger) (stopFunc, error) {
	if !cfg.PprofEnabled {
		logger.Debug("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil, nil
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	srv := &http.Server{Addr: cfg.PprofAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info("pprof server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, pprofShutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}
