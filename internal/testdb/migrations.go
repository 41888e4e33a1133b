package testdb

import (
	"database/sql"
	"fmt"

	"github.com/phrazzld/employee-task-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
)

// ApplyMigrations brings the schema up to date using the embedded migrations.
func ApplyMigrations(db *sql.DB) error {
	goose.SetBaseFS(postgres.Migrations)
	goose.SetTableName(postgres.MigrationTableName)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, postgres.MigrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
