package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/employee-task-api/internal/domain"
)

// EmployeeStore defines the interface for employee data persistence.
type EmployeeStore interface {
	// Create saves a new employee and fills in its generated ID and CreatedDate.
	Create(ctx context.Context, employee *domain.Employee) error

	// GetByID retrieves an employee by ID.
	// Returns ErrEmployeeNotFound if the employee does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)

	// List returns all employees ordered by ID.
	List(ctx context.Context) ([]domain.Employee, error)

	// Update replaces the mutable fields of an existing employee. ID and
	// CreatedDate are left untouched; the stored CreatedDate is copied back.
	// Returns ErrEmployeeNotFound if the employee does not exist.
	Update(ctx context.Context, employee *domain.Employee) error

	// Delete removes an employee.
	// Returns ErrEmployeeNotFound if the employee does not exist and
	// ErrEmployeeHasTasks if tasks are still assigned to it.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new EmployeeStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) EmployeeStore
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task and fills in its generated ID and stored Status.
	// An empty Status lets the schema default apply.
	// Returns ErrEmployeeNotFound (wrapped in ErrInvalidEntity) if the owning
	// employee does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List returns all tasks ordered by ID.
	List(ctx context.Context) ([]domain.Task, error)

	// ListByEmployee returns the tasks assigned to one employee ordered by ID.
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Task, error)

	// Update replaces the mutable fields of an existing task. An empty Status
	// keeps the stored status. CreatedDate is never changed.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) TaskStore
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The caller must have hashed the password.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users ordered by ID.
	List(ctx context.Context) ([]domain.User, error)

	// Update modifies an existing user's details, including PasswordHash.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) UserStore
}
