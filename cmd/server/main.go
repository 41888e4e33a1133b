// Package main implements the entry point for the Employee Task Manager API
// server, which exposes employee, task and user management over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/employee-task-api/internal/config"
	"github.com/phrazzld/employee-task-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command and exit (up, down, status, version, reset)")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("employee-task-api: %v", err)
	}
}

// run loads configuration, connects to the database and either executes a
// migration command or serves HTTP until SIGINT/SIGTERM.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auto_migrate", cfg.Database.AutoMigrate)

	if migrateCmd != "" {
		if err := validateMigrateCommand(migrateCmd); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, appLogger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDB(db, appLogger)
		return runMigrations(ctx, db.DB, migrateCmd, appLogger)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, db.DB, "up", appLogger); err != nil {
			closeDB(db, appLogger)
			return err
		}
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		closeDB(db, appLogger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

func closeDB(db interface{ Close() error }, l *slog.Logger) {
	if err := db.Close(); err != nil {
		l.Error("Error closing database connection", "error", err)
	}
}
