package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/employee-task-api/internal/api/shared"
	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/phrazzld/employee-task-api/internal/mocks"
	"github.com/phrazzld/employee-task-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedUserID int64
		expectedRole   string
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: 7, Role: domain.RoleManager},
			expectedStatus: http.StatusOK,
			expectedUserID: 7,
			expectedRole:   domain.RoleManager,
		},
		{
			name:           "lowercase scheme",
			authHeader:     "bearer valid-token",
			claims:         &auth.Claims{UserID: 7, Role: domain.RoleUser},
			expectedStatus: http.StatusOK,
			expectedUserID: 7,
			expectedRole:   domain.RoleUser,
		},
		{
			name:           "missing auth header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "basic scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unexpected validation failure",
			authHeader:     "Bearer some-token",
			validateErr:    errors.New("keystore unavailable"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}
			m := NewAuthMiddleware(jwtService)

			var capturedUserID int64
			var capturedRole string
			var capturedClaims *auth.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedUserID, _ = GetUserID(r)
				capturedRole, _ = shared.RoleFromContext(r.Context())
				capturedClaims, _ = GetClaims(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, capturedUserID)
				assert.Equal(t, tt.expectedRole, capturedRole)
				assert.Same(t, tt.claims, capturedClaims)
			}
		})
	}
}

func TestAuthMiddleware_AuthenticateWithRealTokens(t *testing.T) {
	jwtService := auth.RequireTestJWTService(t)
	m := NewAuthMiddleware(jwtService)

	var gotID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserID(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", auth.GenerateAuthHeaderForTestingT(t, 12, domain.RoleAdmin))
	rec := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), gotID)
}

func TestAuthMiddleware_RequireRoles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		claims         *auth.Claims
		roles          []string
		expectedStatus int
	}{
		{"admin allowed", &auth.Claims{UserID: 1, Role: domain.RoleAdmin}, []string{domain.RoleAdmin}, http.StatusOK},
		{
			"manager allowed among several",
			&auth.Claims{UserID: 2, Role: domain.RoleManager},
			[]string{domain.RoleAdmin, domain.RoleManager},
			http.StatusOK,
		},
		{"user forbidden", &auth.Claims{UserID: 3, Role: domain.RoleUser}, []string{domain.RoleAdmin}, http.StatusForbidden},
		{"role match is case sensitive", &auth.Claims{UserID: 3, Role: "admin"}, []string{domain.RoleAdmin}, http.StatusForbidden},
		{"no roles means any authenticated", &auth.Claims{UserID: 3, Role: domain.RoleUser}, nil, http.StatusOK},
		{"unauthenticated", nil, []string{domain.RoleAdmin}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewAuthMiddleware(&mocks.MockJWTService{Claims: tt.claims})
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			var handler http.Handler = m.RequireRoles(tt.roles...)(next)
			req := httptest.NewRequest(http.MethodDelete, "/api/employees/1", nil)
			if tt.claims != nil {
				handler = m.Authenticate(handler)
				req.Header.Set("Authorization", "Bearer token")
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
