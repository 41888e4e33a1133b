package api

import (
	"time"

	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/phrazzld/employee-task-api/internal/service"
)

// Messages used in list responses.
const (
	msgEmployeesFetched = "Fetched employees successfully."
	msgTasksFetched     = "Fetched tasks successfully."
)

// ListResponse wraps collections returned by the employee and task endpoints.
type ListResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// EmployeeRequest is the payload for creating or replacing an employee.
// Any employeeId in the body is ignored.
type EmployeeRequest struct {
	FirstName   string `json:"firstName"   validate:"required,max=50"`
	LastName    string `json:"lastName"    validate:"required,max=50"`
	Email       string `json:"email"       validate:"omitempty,email,max=100"`
	Phone       string `json:"phone"       validate:"max=20"`
	Department  string `json:"department"  validate:"max=50"`
	Designation string `json:"designation" validate:"max=50"`
}

// EmployeeResponse is the JSON representation of an employee.
type EmployeeResponse struct {
	EmployeeID  int64     `json:"employeeId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Department  string    `json:"department,omitempty"`
	Designation string    `json:"designation,omitempty"`
	CreatedDate time.Time `json:"createdDate"`
}

// TaskRequest is the payload for creating or replacing a task.
// DueDate accepts an RFC 3339 timestamp or a YYYY-MM-DD date.
type TaskRequest struct {
	EmployeeID  int64   `json:"employeeId"  validate:"required,gt=0"`
	Title       string  `json:"title"       validate:"required,max=100"`
	Description string  `json:"description"`
	Status      string  `json:"status"      validate:"max=20"`
	DueDate     *string `json:"dueDate"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	TaskID      int64      `json:"taskId"`
	EmployeeID  int64      `json:"employeeId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedDate time.Time  `json:"createdDate"`
}

// RegisterRequest is the payload for user registration. Password is checked
// by domain.ValidatePassword, which counts bytes the way bcrypt does.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	FullName string `json:"fullName" validate:"max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=Admin Manager User"`
	Password string `json:"password"`
}

// UpdateUserRequest is the payload for replacing a user. An empty password
// keeps the current one.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	FullName string `json:"fullName" validate:"max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=Admin Manager User"`
	Password string `json:"password"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    int64     `json:"userId"`
	Role      string    `json:"role"`
}

// UserResponse is the JSON representation of a user. It never carries a
// password or hash.
type UserResponse struct {
	UserID      int64     `json:"userId"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName,omitempty"`
	Role        string    `json:"role"`
	CreatedDate time.Time `json:"createdDate"`
}

func (req EmployeeRequest) toDomain() *domain.Employee {
	return &domain.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Department:  req.Department,
		Designation: req.Designation,
	}
}

func employeeToResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		Phone:       e.Phone,
		Department:  e.Department,
		Designation: e.Designation,
		CreatedDate: e.CreatedDate,
	}
}

func employeesToResponse(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, employeeToResponse(&employees[i]))
	}
	return out
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:      t.ID,
		EmployeeID:  t.EmployeeID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedDate: t.CreatedDate,
	}
}

func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToResponse(&tasks[i]))
	}
	return out
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role,
		CreatedDate: u.CreatedDate,
	}
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	return out
}

func loginToResponse(result *service.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		UserID:    result.User.ID,
		Role:      result.User.Role,
	}
}
