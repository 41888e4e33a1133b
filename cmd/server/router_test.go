package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/employee-task-api/internal/config"
	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/phrazzld/employee-task-api/internal/mocks"
	"github.com/phrazzld/employee-task-api/internal/service"
	"github.com/phrazzld/employee-task-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokens maps bearer tokens to the role they authenticate as.
var tokens = map[string]string{
	"admin-token":   domain.RoleAdmin,
	"manager-token": domain.RoleManager,
	"user-token":    domain.RoleUser,
}

func newTestApplication(t *testing.T) (*application, sqlmock.Sqlmock) {
	t.Helper()

	rawDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rawDB.Close() })

	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			role, ok := tokens[token]
			if !ok {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: 7, Role: role}, nil
		},
	}

	userService := &mocks.MockUserService{
		LoginFn: func(_ context.Context, email, password string) (*service.LoginResult, error) {
			if email == "admin@example.com" && password == "secret" {
				return &service.LoginResult{
					Token: "admin-token",
					User:  &domain.User{ID: 1, Email: email, Role: domain.RoleAdmin},
				}, nil
			}
			return nil, service.ErrInvalidCredentials
		},
	}

	app := &application{
		config: &config.Config{
			Server: config.ServerConfig{
				Port:                   8080,
				AllowedOrigins:         []string{"*"},
				ShutdownTimeoutSeconds: 1,
			},
		},
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		db:              sqlx.NewDb(rawDB, "sqlmock"),
		employeeService: &mocks.MockEmployeeService{},
		taskService:     &mocks.MockTaskService{},
		userService:     userService,
		jwtService:      jwtService,
	}
	return app, mock
}

func serve(handler http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestRouterRoleGuards(t *testing.T) {
	app, _ := newTestApplication(t)
	handler := app.setupRouter()

	tests := []struct {
		name   string
		method string
		target string
		token  string
		want   int
	}{
		{"no token", http.MethodGet, "/api/employees", "", http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/api/employees", "forged", http.StatusUnauthorized},
		{"admin lists employees", http.MethodGet, "/api/employees", "admin-token", http.StatusOK},
		{"manager lists employees", http.MethodGet, "/api/employees", "manager-token", http.StatusOK},
		{"user cannot list employees", http.MethodGet, "/api/employees", "user-token", http.StatusForbidden},
		{"manager cannot delete employee", http.MethodDelete, "/api/employees/1", "manager-token", http.StatusForbidden},
		{"admin deletes employee", http.MethodDelete, "/api/employees/1", "admin-token", http.StatusNoContent},
		{"user lists employee tasks", http.MethodGet, "/api/employees/1/tasks", "user-token", http.StatusOK},
		{"user lists tasks", http.MethodGet, "/api/tasks", "user-token", http.StatusOK},
		{"user cannot delete task", http.MethodDelete, "/api/tasks/3", "user-token", http.StatusForbidden},
		{"manager cannot delete task", http.MethodDelete, "/api/tasks/3", "manager-token", http.StatusForbidden},
		{"admin deletes task", http.MethodDelete, "/api/tasks/3", "admin-token", http.StatusNoContent},
		{"any role reads secure data", http.MethodGet, "/api/users/secure-data", "user-token", http.StatusOK},
		{"any role lists users", http.MethodGet, "/api/users", "user-token", http.StatusOK},
		{"user cannot delete user", http.MethodDelete, "/api/users/2", "user-token", http.StatusForbidden},
		{"admin deletes user", http.MethodDelete, "/api/users/2", "admin-token", http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(handler, tc.method, tc.target, tc.token, "")
			assert.Equal(t, tc.want, rr.Code, rr.Body.String())
		})
	}
}

func TestRouterPublicEndpoints(t *testing.T) {
	app, _ := newTestApplication(t)
	handler := app.setupRouter()

	t.Run("login succeeds without a token", func(t *testing.T) {
		rr := serve(handler, http.MethodPost, "/api/users/login", "",
			`{"email":"admin@example.com","password":"secret"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"token":"admin-token"`)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		rr := serve(handler, http.MethodPost, "/api/users/login", "",
			`{"email":"admin@example.com","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("register without password", func(t *testing.T) {
		rr := serve(handler, http.MethodPost, "/api/users/register", "",
			`{"email":"new@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Password is required")
	})
}

func TestRouterTraceHeader(t *testing.T) {
	app, _ := newTestApplication(t)
	rr := serve(app.setupRouter(), http.MethodGet, "/api/tasks", "", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

func TestRouterHealth(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		app, mock := newTestApplication(t)
		mock.ExpectPing()

		rr := serve(app.setupRouter(), http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OK", strings.TrimSpace(rr.Body.String()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		app, mock := newTestApplication(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		rr := serve(app.setupRouter(), http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}

func TestRouterCORSPreflight(t *testing.T) {
	app, _ := newTestApplication(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/employees", nil)
	req.Header.Set("Origin", "https://client.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewApplicationValidation(t *testing.T) {
	_, err := newApplication(nil, nil, nil)
	assert.Error(t, err)

	rawDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = rawDB.Close() }()

	_, err = newApplication(&config.Config{}, nil, sqlx.NewDb(rawDB, "sqlmock"))
	assert.Error(t, err, "empty auth config should fail JWT service setup")
}
