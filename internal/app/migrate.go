package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/riskibarqy/ro-transfer-hub/internal/config"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

// MigrationCommands lists the verbs RunMigration accepts.
var MigrationCommands = []string{"up", "down", "version", "force", "goto"}

// MigrationStatus is the schema version after a migration command.
type MigrationStatus struct {
	Version uint
	Dirty   bool
	None    bool
}

// RunMigration applies one golang-migrate command against cfg.DBURL using
// the SQL files under db/migrations.
func RunMigration(cfg config.Config, logger *logging.Logger, command string, args []string) (MigrationStatus, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.DBURL) == "" {
		return MigrationStatus{}, fmt.Errorf("DB_URL is required")
	}

	dir, err := resolveMigrationsDir()
	if err != nil {
		return MigrationStatus{}, err
	}
	sourceURL := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(sourceURL, normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("close migration source", "error", srcErr)
		}
		if dbErr != nil {
			logger.Warn("close migration db", "error", dbErr)
		}
	}()

	switch strings.ToLower(strings.TrimSpace(command)) {
	case "up":
		err = ignoreNoChange(logger, m.Up())
		logger.Info("migrations applied", "source", sourceURL)
	case "down":
		steps, parseErr := parseSteps(args)
		if parseErr != nil {
			return MigrationStatus{}, parseErr
		}
		err = ignoreNoChange(logger, m.Steps(-steps))
		logger.Info("migrations rolled back", "steps", steps)
	case "version":
	case "force":
		if len(args) == 0 {
			return MigrationStatus{}, fmt.Errorf("force requires a version argument")
		}
		version, parseErr := parseVersion(args[0])
		if parseErr != nil {
			return MigrationStatus{}, parseErr
		}
		if err = m.Force(version); err != nil {
			err = fmt.Errorf("force version %d: %w", version, err)
		}
	case "goto":
		if len(args) == 0 {
			return MigrationStatus{}, fmt.Errorf("goto requires a target version argument")
		}
		target, parseErr := parseTarget(args[0])
		if parseErr != nil {
			return MigrationStatus{}, parseErr
		}
		err = ignoreNoChange(logger, m.Migrate(target))
	default:
		return MigrationStatus{}, fmt.Errorf("unknown migration command %q (want one of %s)", command, strings.Join(MigrationCommands, ", "))
	}
	if err != nil {
		return MigrationStatus{}, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{None: true}, nil
	}
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("read version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty}, nil
}

func ignoreNoChange(logger *logging.Logger, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}
	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	return value, nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func resolveMigrationsDir() (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./db/migrations",
		"/app/db/migrations",
	}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
}
