package main

import (
	"fmt"
	"log/slog"
	"os"

	"publicdashboard/internal/cli"
	"publicdashboard/internal/config"
	"publicdashboard/internal/registry"
	"publicdashboard/internal/service"
	"publicdashboard/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Operator output goes to stdout; only warnings and errors are logged.
	level := max(cfg.LogLevel, slog.LevelWarn)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	components, err := registry.NewWithComponents(cfg.Components)
	if err != nil {
		return fmt.Errorf("failed to register dashboard components: %w", err)
	}

	app := &cli.App{
		Service:    service.NewDashboardService(storage.NewDashboardRepo(db)),
		Components: components,
	}
	return cli.RootCmd(app).Execute()
}
