package testdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/employee-task-api/internal/store"
	"github.com/stretchr/testify/require"
)

// MustInsertEmployee inserts a minimal employee row and returns its ID.
func MustInsertEmployee(ctx context.Context, t *testing.T, db store.DBTX, firstName string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowxContext(ctx,
		`INSERT INTO employees (first_name, last_name) VALUES ($1, $2) RETURNING employee_id`,
		firstName, "Fixture",
	).Scan(&id)
	require.NoError(t, err, "Failed to insert test employee")
	return id
}

// MustInsertTask inserts a task owned by employeeID and returns its ID.
func MustInsertTask(ctx context.Context, t *testing.T, db store.DBTX, employeeID int64, title string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowxContext(ctx,
		`INSERT INTO tasks (employee_id, title) VALUES ($1, $2) RETURNING task_id`,
		employeeID, title,
	).Scan(&id)
	require.NoError(t, err, "Failed to insert test task")
	return id
}

// UniqueEmail returns an email address that will not collide with other tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.New().String()[:8])
}

// CountRows returns the number of rows in table matching whereClause.
func CountRows(ctx context.Context, t *testing.T, db store.DBTX, table, whereClause string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if whereClause != "" {
		query += " WHERE " + whereClause
	}
	var count int
	require.NoError(t, db.GetContext(ctx, &count, query, args...), "Failed to count rows")
	return count
}
