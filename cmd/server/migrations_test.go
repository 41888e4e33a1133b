package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMigrateCommand(t *testing.T) {
	for _, cmd := range []string{"up", "down", "status", "version", "reset"} {
		assert.NoError(t, validateMigrateCommand(cmd), cmd)
	}

	err := validateMigrateCommand("sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestRunMigrationsRejectsUnknownCommand(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = runMigrations(context.Background(), db, "create", slog.Default())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL should run for an unknown command")
}

func TestSlogGooseLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &slogGooseLogger{logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	l.Printf("applied %d migrations", 3)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), "applied 3 migrations")

	buf.Reset()
	l.Fatalf("failed: %s", "boom")
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "failed: boom")
}

func TestCurrentVersion(t *testing.T) {
	logger := slog.Default()

	t.Run("returns latest applied version", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT version_id FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version_id"}).AddRow(int64(1)))

		assert.Equal(t, int64(1), currentVersion(context.Background(), db, logger))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero when nothing is applied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT version_id FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version_id"}))

		assert.Equal(t, int64(0), currentVersion(context.Background(), db, logger))
	})
}
