package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/employee-task-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedClockService(t *testing.T, now *time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(DefaultJWTConfig(), func() time.Time { return *now })
	require.NoError(t, err)
	return svc
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newFixedClockService(t, &now)
	user := &domain.User{ID: 42, Role: domain.RoleManager}

	token, expiresAt, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.RoleManager, claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "employee-task-api", claims.Issuer)
	assert.Equal(t, []string{"employee-task-clients"}, claims.Audience)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	t.Parallel()

	svc := RequireTestJWTService(t)
	user := &domain.User{ID: 1, Role: domain.RoleUser}

	a, _, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)
	b, _, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	ca, err := svc.ValidateToken(context.Background(), a)
	require.NoError(t, err)
	cb, err := svc.ValidateToken(context.Background(), b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestValidateToken_Failures(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newFixedClockService(t, &now)
	user := &domain.User{ID: 7, Role: domain.RoleAdmin}

	valid, _, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	otherCfg := DefaultJWTConfig()
	otherCfg.JWTSecret = "a-completely-different-secret-of-32-chars"
	wrongSecret, err := newHMACJWTService(otherCfg, func() time.Time { return now })
	require.NoError(t, err)
	forged, _, err := wrongSecret.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	otherIssuerCfg := DefaultJWTConfig()
	otherIssuerCfg.Issuer = "someone-else"
	otherIssuer, err := newHMACJWTService(otherIssuerCfg, func() time.Time { return now })
	require.NoError(t, err)
	wrongIssuer, _, err := otherIssuer.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	otherAudienceCfg := DefaultJWTConfig()
	otherAudienceCfg.Audience = "other-clients"
	otherAudience, err := newHMACJWTService(otherAudienceCfg, func() time.Time { return now })
	require.NoError(t, err)
	wrongAudience, _, err := otherAudience.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid": 7, "role": "Admin", "iss": "employee-task-api", "aud": "employee-task-clients",
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrMissingToken},
		{"malformed", "not-a-jwt", ErrInvalidToken},
		{"wrong secret", forged, ErrInvalidToken},
		{"wrong issuer", wrongIssuer, ErrInvalidToken},
		{"wrong audience", wrongAudience, ErrInvalidToken},
		{"none algorithm", noneToken, ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, claims)
		})
	}

	_, err = svc.ValidateToken(context.Background(), valid)
	assert.NoError(t, err)
}

func TestValidateToken_Expiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newFixedClockService(t, &now)

	token, _, err := svc.GenerateToken(context.Background(), &domain.User{ID: 3, Role: domain.RoleUser})
	require.NoError(t, err)

	// Within the clock skew allowance
	now = now.Add(61 * time.Minute)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.NoError(t, err)

	now = now.Add(5 * time.Minute)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestNewJWTService_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultJWTConfig()
	cfg.JWTSecret = "short"
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = DefaultJWTConfig()
	cfg.Audience = ""
	_, err = NewJWTService(cfg)
	assert.Error(t, err)

	cfg = DefaultJWTConfig()
	cfg.TokenLifetimeMinutes = 0
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestGenerateAuthHeaderForTesting(t *testing.T) {
	t.Parallel()

	header := GenerateAuthHeaderForTestingT(t, 5, domain.RoleAdmin)
	require.True(t, len(header) > len("Bearer "))

	claims, err := RequireTestJWTService(t).ValidateToken(context.Background(), header[len("Bearer "):])
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}
