package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/phrazzld/employee-task-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// EmployeeStore is a testify mock of store.EmployeeStore.
// WithTx returns the same mock so expectations cover transactional calls too.
type EmployeeStore struct {
	mock.Mock
}

var _ store.EmployeeStore = (*EmployeeStore)(nil)

func (m *EmployeeStore) Create(ctx context.Context, employee *domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *EmployeeStore) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*domain.Employee); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EmployeeStore) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]domain.Employee); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EmployeeStore) Update(ctx context.Context, employee *domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *EmployeeStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *EmployeeStore) WithTx(tx *sqlx.Tx) store.EmployeeStore {
	return m
}

// TaskStore is a testify mock of store.TaskStore.
type TaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*TaskStore)(nil)

func (m *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*domain.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]domain.Task); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskStore) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Task, error) {
	args := m.Called(ctx, employeeID)
	if list, ok := args.Get(0).([]domain.Task); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *TaskStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *TaskStore) WithTx(tx *sqlx.Tx) store.TaskStore {
	return m
}

// UserStore is a testify mock of store.UserStore.
type UserStore struct {
	mock.Mock
}

var _ store.UserStore = (*UserStore)(nil)

func (m *UserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]domain.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserStore) WithTx(tx *sqlx.Tx) store.UserStore {
	return m
}
