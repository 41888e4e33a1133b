package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/employee-task-api/internal/api/shared"
	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/phrazzld/employee-task-api/internal/service"
	"github.com/phrazzld/employee-task-api/internal/service/auth"
	"github.com/phrazzld/employee-task-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCodeAndMessage(t *testing.T) {
	unknownEmployee := fmt.Errorf("%w: %w: id %d", store.ErrInvalidEntity, store.ErrEmployeeNotFound, 9)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, "An unexpected error occurred"},
		{
			"past due date",
			fmt.Errorf("wrapped: %w", domain.NewValidationError("dueDate", "Due date cannot be in the past.", domain.ErrDueDateInPast)),
			http.StatusBadRequest,
			"Due date cannot be in the past.",
		},
		{
			"password required",
			domain.NewValidationError("password", "Password is required", domain.ErrPasswordRequired),
			http.StatusBadRequest,
			"Password is required",
		},
		{
			"field validation",
			domain.NewValidationError("firstName", "is required", nil),
			http.StatusBadRequest,
			"firstName: is required",
		},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest, "Request body is required"},
		{"unknown employee on task write", unknownEmployee, http.StatusBadRequest, "Employee does not exist"},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest, "Invalid entity data"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "Invalid token"},
		{
			"employee not found",
			fmt.Errorf("failed to get employee: %w", store.ErrEmployeeNotFound),
			http.StatusNotFound,
			"Employee not found",
		},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound, "Task not found"},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"generic not found", store.ErrNotFound, http.StatusNotFound, "Resource not found"},
		{"email exists", store.ErrEmailExists, http.StatusConflict, "Email already exists"},
		{
			"employee has tasks",
			fmt.Errorf("failed to delete employee: %w", store.ErrEmployeeHasTasks),
			http.StatusConflict,
			"Employee has assigned tasks and cannot be deleted",
		},
		{
			"unexpected",
			errors.New("pq: connection to 10.0.0.5:5432 refused"),
			http.StatusInternalServerError,
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.expectedMsg, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := shared.ValidateRequest(&EmployeeRequest{LastName: "Doe"})
	assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(err))
	assert.Equal(t, "Invalid firstName: required field", GetSafeErrorMessage(err))

	err = shared.ValidateRequest(&EmployeeRequest{FirstName: "A", LastName: "B", Email: "nope"})
	assert.Equal(t, "Invalid email: invalid email format", GetSafeErrorMessage(err))
}

func TestHandleAPIError(t *testing.T) {
	t.Run("default message replaces 5xx", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := newRequest(http.MethodGet, "/api/tasks", "")

		HandleAPIError(rec, req, errors.New("select failed"), "An error occurred while fetching tasks.")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "An error occurred while fetching tasks.", decodeError(t, rec).Error)
	})

	t.Run("default message ignored for 4xx", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := newRequest(http.MethodGet, "/api/tasks/1", "")

		HandleAPIError(rec, req, store.ErrTaskNotFound, "An error occurred")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found", decodeError(t, rec).Error)
	})

	t.Run("internal detail never reaches the client", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := newRequest(http.MethodGet, "/api/users", "")

		HandleAPIError(rec, req, errors.New("SELECT password_hash FROM users failed"), "")

		assert.NotContains(t, rec.Body.String(), "password_hash")
	})
}
