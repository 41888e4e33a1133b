package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/phrazzld/employee-task-api/internal/store"
)

// TaskService manages tasks and their assignment to employees.
type TaskService interface {
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	// ListTasksByEmployee returns store.ErrEmployeeNotFound if the employee does not exist.
	ListTasksByEmployee(ctx context.Context, employeeID int64) ([]domain.Task, error)
	// CreateTask stamps CreatedDate with the current UTC time and truncates DueDate to a date.
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// UpdateTask replaces the mutable fields of a task; CreatedDate is kept.
	UpdateTask(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type taskServiceImpl struct {
	taskStore     store.TaskStore
	employeeStore store.EmployeeStore
	db            *sqlx.DB
	logger        *slog.Logger
	now           func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskStore store.TaskStore,
	employeeStore store.EmployeeStore,
	db *sqlx.DB,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if employeeStore == nil {
		return nil, fmt.Errorf("employeeStore cannot be nil")
	}
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskServiceImpl{
		taskStore:     taskStore,
		employeeStore: employeeStore,
		db:            db,
		logger:        logger.With("component", "task_service"),
		now:           time.Now,
	}, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) ListTasksByEmployee(ctx context.Context, employeeID int64) ([]domain.Task, error) {
	var tasks []domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := s.employeeStore.WithTx(tx).GetByID(ctx, employeeID); err != nil {
			return err
		}
		var err error
		tasks, err = s.taskStore.WithTx(tx).ListByEmployee(ctx, employeeID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for employee: %w", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	created := *task
	created.ID = 0
	created.CreatedDate = s.now().UTC()
	created.DueDate = domain.NormalizeDueDate(task.DueDate)

	if err := created.Validate(); err != nil {
		return nil, err
	}
	if err := s.taskStore.Create(ctx, &created); err != nil {
		s.logger.Warn("failed to create task", "error", err, "employee_id", created.EmployeeID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created", "task_id", created.ID, "employee_id", created.EmployeeID)
	return &created, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error) {
	updated := *task
	updated.ID = id
	updated.DueDate = domain.NormalizeDueDate(task.DueDate)

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		existing, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		updated.CreatedDate = existing.CreatedDate

		return txStore.Update(ctx, &updated)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("task updated", "task_id", id)
	return &updated, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	s.logger.Info("task deleted", "task_id", id)
	return nil
}
