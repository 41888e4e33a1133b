package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/phrazzld/employee-task-api/internal/store"
)

// EmployeeService manages employee records.
type EmployeeService interface {
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	// CreateEmployee ignores any ID set on employee and returns the stored record.
	CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	// UpdateEmployee replaces the mutable fields of the employee with the given ID.
	UpdateEmployee(ctx context.Context, id int64, employee *domain.Employee) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

type employeeServiceImpl struct {
	employeeStore store.EmployeeStore
	logger        *slog.Logger
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeStore store.EmployeeStore, logger *slog.Logger) (EmployeeService, error) {
	if employeeStore == nil {
		return nil, fmt.Errorf("employeeStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &employeeServiceImpl{
		employeeStore: employeeStore,
		logger:        logger.With("component", "employee_service"),
	}, nil
}

func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.employeeStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	created := *employee
	created.ID = 0

	if err := created.Validate(); err != nil {
		return nil, err
	}
	if err := s.employeeStore.Create(ctx, &created); err != nil {
		s.logger.Error("failed to create employee", "error", err)
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("employee created", "employee_id", created.ID)
	return &created, nil
}

func (s *employeeServiceImpl) UpdateEmployee(
	ctx context.Context,
	id int64,
	employee *domain.Employee,
) (*domain.Employee, error) {
	updated := *employee
	updated.ID = id

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.employeeStore.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	s.logger.Info("employee updated", "employee_id", id)
	return &updated, nil
}

func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employeeStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}
