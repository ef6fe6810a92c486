package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/ro-transfer-hub/internal/app"
	"github.com/riskibarqy/ro-transfer-hub/internal/config"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	logger := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		Format:    logging.FormatForEnv(cfg.AppEnv),
		Output:    os.Stderr,
		Component: "migration",
	})
	defer func() { _ = logger.Sync() }()

	status, err := app.RunMigration(cfg, logger, os.Args[1], os.Args[2:])
	if err != nil {
		logger.Error("migration failed", "command", os.Args[1], "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	if status.None {
		fmt.Println("version: none")
		fmt.Println("dirty: false")
		return
	}
	fmt.Printf("version: %d\n", status.Version)
	fmt.Printf("dirty: %t\n", status.Dirty)
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <%s> [args]\n", name, strings.Join(app.MigrationCommands, "|"))
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s up\n", name)
	fmt.Fprintf(os.Stderr, "  %s down 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s version\n", name)
	fmt.Fprintf(os.Stderr, "  %s force 3\n", name)
	fmt.Fprintf(os.Stderr, "  %s goto 2\n", name)
}
