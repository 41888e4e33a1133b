package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/employee-task-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
)

var migrateCommands = []string{"up", "down", "status", "version", "reset"}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at INFO.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at ERROR. It does not exit; the error reaches main through the
// goose return value.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func validateMigrateCommand(command string) error {
	if !slices.Contains(migrateCommands, command) {
		return fmt.Errorf("unknown migration command %q (expected one of %v)", command, migrateCommands)
	}
	return nil
}

// runMigrations executes a goose command against the embedded SQL migrations.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if err := validateMigrateCommand(command); err != nil {
		return err
	}

	migrationLogger := logger.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	goose.SetBaseFS(postgres.Migrations)
	goose.SetTableName(postgres.MigrationTableName)
	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	before := currentVersion(ctx, db, migrationLogger)
	start := time.Now()

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, db, postgres.MigrationsDir)
	case "down":
		err = goose.DownContext(ctx, db, postgres.MigrationsDir)
	case "reset":
		err = goose.ResetContext(ctx, db, postgres.MigrationsDir)
	case "status":
		err = goose.StatusContext(ctx, db, postgres.MigrationsDir)
	case "version":
		err = goose.VersionContext(ctx, db, postgres.MigrationsDir)
	}
	if err != nil {
		migrationLogger.Error("Migration command failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	after := currentVersion(ctx, db, migrationLogger)
	migrationLogger.Info("Migration command executed successfully",
		"previous_version", before,
		"version", after,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

// currentVersion returns the newest applied migration, or 0 when none is
// applied or the version table does not exist yet.
func currentVersion(ctx context.Context, db *sql.DB, logger *slog.Logger) int64 {
	var version int64
	query := fmt.Sprintf(
		"SELECT version_id FROM %s WHERE is_applied ORDER BY id DESC LIMIT 1",
		postgres.MigrationTableName,
	)
	err := db.QueryRowContext(ctx, query).Scan(&version)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Debug("Could not read migration version", "error", err)
		}
		return 0
	}
	return version
}
