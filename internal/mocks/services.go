package mocks

import (
	"context"

	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/phrazzld/employee-task-api/internal/service"
)

// MockEmployeeService implements service.EmployeeService with function fields.
// Unset functions return zero values.
type MockEmployeeService struct {
	GetEmployeeFn    func(ctx context.Context, id int64) (*domain.Employee, error)
	ListEmployeesFn  func(ctx context.Context) ([]domain.Employee, error)
	CreateEmployeeFn func(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	UpdateEmployeeFn func(ctx context.Context, id int64, employee *domain.Employee) (*domain.Employee, error)
	DeleteEmployeeFn func(ctx context.Context, id int64) error
}

var _ service.EmployeeService = (*MockEmployeeService)(nil)

func (m *MockEmployeeService) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	if m.GetEmployeeFn != nil {
		return m.GetEmployeeFn(ctx, id)
	}
	return nil, nil
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	if m.ListEmployeesFn != nil {
		return m.ListEmployeesFn(ctx)
	}
	return nil, nil
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if m.CreateEmployeeFn != nil {
		return m.CreateEmployeeFn(ctx, employee)
	}
	return employee, nil
}

func (m *MockEmployeeService) UpdateEmployee(
	ctx context.Context,
	id int64,
	employee *domain.Employee,
) (*domain.Employee, error) {
	if m.UpdateEmployeeFn != nil {
		return m.UpdateEmployeeFn(ctx, id, employee)
	}
	return employee, nil
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if m.DeleteEmployeeFn != nil {
		return m.DeleteEmployeeFn(ctx, id)
	}
	return nil
}

// MockTaskService implements service.TaskService with function fields.
type MockTaskService struct {
	GetTaskFn             func(ctx context.Context, id int64) (*domain.Task, error)
	ListTasksFn           func(ctx context.Context) ([]domain.Task, error)
	ListTasksByEmployeeFn func(ctx context.Context, employeeID int64) ([]domain.Task, error)
	CreateTaskFn          func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	UpdateTaskFn          func(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error)
	DeleteTaskFn          func(ctx context.Context, id int64) error
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return nil, nil
}

func (m *MockTaskService) ListTasksByEmployee(ctx context.Context, employeeID int64) ([]domain.Task, error) {
	if m.ListTasksByEmployeeFn != nil {
		return m.ListTasksByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (m *MockTaskService) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, task)
	}
	return task, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, task)
	}
	return task, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return nil
}

// MockUserService implements service.UserService with function fields.
type MockUserService struct {
	RegisterFn     func(ctx context.Context, input service.RegisterInput) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	LoginFn        func(ctx context.Context, email, password string) (*service.LoginResult, error)
	ListUsersFn    func(ctx context.Context) ([]domain.User, error)
	GetUserFn      func(ctx context.Context, id int64) (*domain.User, error)
	UpdateUserFn   func(ctx context.Context, id int64, input service.UpdateUserInput) (*domain.User, error)
	DeleteUserFn   func(ctx context.Context, id int64) error
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, input service.RegisterInput) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, input)
	}
	return nil, nil
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return nil, service.ErrInvalidCredentials
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return nil, service.ErrInvalidCredentials
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(
	ctx context.Context,
	id int64,
	input service.UpdateUserInput,
) (*domain.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, id, input)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id int64) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, id)
	}
	return nil
}
