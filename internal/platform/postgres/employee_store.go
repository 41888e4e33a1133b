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

const employeeColumns = `employee_id, first_name, last_name, email, phone, department, designation, created_date`

type employeeRow struct {
	ID          int64          `db:"employee_id"`
	FirstName   string         `db:"first_name"`
	LastName    string         `db:"last_name"`
	Email       sql.NullString `db:"email"`
	Phone       sql.NullString `db:"phone"`
	Department  sql.NullString `db:"department"`
	Designation sql.NullString `db:"designation"`
	CreatedDate time.Time      `db:"created_date"`
}

func (r employeeRow) toDomain() domain.Employee {
	return domain.Employee{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email.String,
		Phone:       r.Phone.String,
		Department:  r.Department.String,
		Designation: r.Designation.String,
		CreatedDate: r.CreatedDate.UTC(),
	}
}

// PostgresEmployeeStore implements the store.EmployeeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresEmployeeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEmployeeStore creates a new PostgreSQL implementation of the EmployeeStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresEmployeeStore(db store.DBTX, logger *slog.Logger) *PostgresEmployeeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresEmployeeStore{
		db:     db,
		logger: logger.With(slog.String("component", "employee_store")),
	}
}

// Ensure PostgresEmployeeStore implements store.EmployeeStore interface
var _ store.EmployeeStore = (*PostgresEmployeeStore)(nil)

// WithTx implements store.EmployeeStore.WithTx
func (s *PostgresEmployeeStore) WithTx(tx *sqlx.Tx) store.EmployeeStore {
	return &PostgresEmployeeStore{db: tx, logger: s.logger}
}

// Create implements store.EmployeeStore.Create
// The generated ID and created date are written back into employee.
func (s *PostgresEmployeeStore) Create(ctx context.Context, employee *domain.Employee) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := employee.Validate(); err != nil {
		log.Warn("employee validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO employees (first_name, last_name, email, phone, department, designation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING employee_id, created_date
	`
	err := s.db.QueryRowxContext(ctx, query,
		employee.FirstName,
		employee.LastName,
		nullString(employee.Email),
		nullString(employee.Phone),
		nullString(employee.Department),
		nullString(employee.Designation),
	).Scan(&employee.ID, &employee.CreatedDate)
	if err != nil {
		log.Error("failed to create employee", slog.String("error", err.Error()))
		return mapStoreError("employee", "create", err)
	}
	employee.CreatedDate = employee.CreatedDate.UTC()

	log.Info("employee created successfully", slog.Int64("employee_id", employee.ID))
	return nil
}

// GetByID implements store.EmployeeStore.GetByID
func (s *PostgresEmployeeStore) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row employeeRow
	err := s.db.GetContext(ctx, &row,
		`SELECT `+employeeColumns+` FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("employee not found", slog.Int64("employee_id", id))
			return nil, store.ErrEmployeeNotFound
		}
		log.Error("failed to get employee by ID",
			slog.String("error", err.Error()),
			slog.Int64("employee_id", id))
		return nil, mapStoreError("employee", "get", err)
	}

	employee := row.toDomain()
	return &employee, nil
}

// List implements store.EmployeeStore.List
func (s *PostgresEmployeeStore) List(ctx context.Context) ([]domain.Employee, error) {
	var rows []employeeRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT `+employeeColumns+` FROM employees ORDER BY employee_id`); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list employees",
			slog.String("error", err.Error()))
		return nil, mapStoreError("employee", "list", err)
	}

	employees := make([]domain.Employee, 0, len(rows))
	for _, r := range rows {
		employees = append(employees, r.toDomain())
	}
	return employees, nil
}

// Update implements store.EmployeeStore.Update
func (s *PostgresEmployeeStore) Update(ctx context.Context, employee *domain.Employee) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := employee.Validate(); err != nil {
		log.Warn("employee validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("employee_id", employee.ID))
		return err
	}

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, phone = $4, department = $5, designation = $6
		WHERE employee_id = $7
		RETURNING created_date
	`
	err := s.db.QueryRowxContext(ctx, query,
		employee.FirstName,
		employee.LastName,
		nullString(employee.Email),
		nullString(employee.Phone),
		nullString(employee.Department),
		nullString(employee.Designation),
		employee.ID,
	).Scan(&employee.CreatedDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("employee not found for update", slog.Int64("employee_id", employee.ID))
			return store.ErrEmployeeNotFound
		}
		log.Error("failed to update employee",
			slog.String("error", err.Error()),
			slog.Int64("employee_id", employee.ID))
		return mapStoreError("employee", "update", err)
	}
	employee.CreatedDate = employee.CreatedDate.UTC()

	log.Info("employee updated successfully", slog.Int64("employee_id", employee.ID))
	return nil
}

// Delete implements store.EmployeeStore.Delete
// Tasks still referencing the employee block the delete.
func (s *PostgresEmployeeStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("employee still has tasks", slog.Int64("employee_id", id))
			return fmt.Errorf("%w: employee %d", store.ErrEmployeeHasTasks, id)
		}
		log.Error("failed to delete employee",
			slog.String("error", err.Error()),
			slog.Int64("employee_id", id))
		return mapStoreError("employee", "delete", err)
	}

	if err := CheckRowsAffected(result, store.ErrEmployeeNotFound); err != nil {
		return err
	}

	log.Info("employee deleted successfully", slog.Int64("employee_id", id))
	return nil
}
