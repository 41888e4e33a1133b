package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/phrazzld/employee-task-api/internal/platform/logger"
	"github.com/phrazzld/employee-task-api/internal/store"
)

const taskColumns = `task_id, employee_id, title, description, status, due_date, created_date`

type taskRow struct {
	ID          int64          `db:"task_id"`
	EmployeeID  int64          `db:"employee_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	DueDate     sql.NullTime   `db:"due_date"`
	CreatedDate time.Time      `db:"created_date"`
}

func (r taskRow) toDomain() domain.Task {
	return domain.Task{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Title:       r.Title,
		Description: r.Description.String,
		Status:      r.Status,
		DueDate:     domain.NormalizeDueDate(timePtr(r.DueDate)),
		CreatedDate: r.CreatedDate.UTC(),
	}
}

// PostgresTaskStore implements the store.TaskStore interface using PostgreSQL.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgresTaskStore.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sqlx.Tx) store.TaskStore {
	return &PostgresTaskStore{db: tx, logger: s.logger}
}

// mapTaskWriteError turns a missing owning employee into a client error.
func mapTaskWriteError(operation string, err error, employeeID int64) error {
	if IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %w: id %d", store.ErrInvalidEntity, store.ErrEmployeeNotFound, employeeID)
	}
	return mapStoreError("task", operation, err)
}

// Create implements store.TaskStore.Create
// An empty Status is left out of the insert so the column default applies.
// A zero CreatedDate falls back to the database clock.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return err
	}

	var createdDate sql.NullTime
	if !task.CreatedDate.IsZero() {
		createdDate = sql.NullTime{Time: task.CreatedDate, Valid: true}
	}

	args := []any{
		task.EmployeeID,
		task.Title,
		nullString(task.Description),
		nullTime(domain.NormalizeDueDate(task.DueDate)),
		createdDate,
	}
	query := `
		INSERT INTO tasks (employee_id, title, description, due_date, created_date)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		RETURNING task_id, status, created_date
	`
	if task.Status != "" {
		query = `
		INSERT INTO tasks (employee_id, title, description, due_date, created_date, status)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()), $6)
		RETURNING task_id, status, created_date
	`
		args = append(args, task.Status)
	}

	err := s.db.QueryRowxContext(ctx, query, args...).Scan(&task.ID, &task.Status, &task.CreatedDate)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("employee_id", task.EmployeeID))
		return mapTaskWriteError("create", err, task.EmployeeID)
	}
	task.CreatedDate = task.CreatedDate.UTC()
	task.DueDate = domain.NormalizeDueDate(task.DueDate)

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.Int64("employee_id", task.EmployeeID),
		slog.String("status", task.Status))
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row taskRow
	err := s.db.GetContext(ctx, &row, `SELECT `+taskColumns+` FROM tasks WHERE task_id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, mapStoreError("task", "get", err)
	}

	task := row.toDomain()
	return &task, nil
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	return s.selectTasks(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY task_id`)
}

// ListByEmployee implements store.TaskStore.ListByEmployee
func (s *PostgresTaskStore) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Task, error) {
	return s.selectTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE employee_id = $1 ORDER BY task_id`, employeeID)
}

func (s *PostgresTaskStore) selectTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("error", err.Error()))
		return nil, mapStoreError("task", "list", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.toDomain())
	}
	return tasks, nil
}

// Update implements store.TaskStore.Update
// The stored status and created date are written back into task.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}

	query := `
		UPDATE tasks
		SET employee_id = $1, title = $2, description = $3,
			status = COALESCE(NULLIF($4, ''), status), due_date = $5
		WHERE task_id = $6
		RETURNING status, created_date
	`
	err := s.db.QueryRowxContext(ctx, query,
		task.EmployeeID,
		task.Title,
		nullString(task.Description),
		task.Status,
		nullTime(domain.NormalizeDueDate(task.DueDate)),
		task.ID,
	).Scan(&task.Status, &task.CreatedDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for update", slog.Int64("task_id", task.ID))
			return store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return mapTaskWriteError("update", err, task.EmployeeID)
	}
	task.CreatedDate = task.CreatedDate.UTC()
	task.DueDate = domain.NormalizeDueDate(task.DueDate)

	log.Info("task updated successfully", slog.Int64("task_id", task.ID))
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE task_id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return mapStoreError("task", "delete", err)
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return nil
}
