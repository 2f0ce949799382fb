//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"grocery-admin/internal/domain/user"
	"grocery-admin/internal/pkg/config"
	"grocery-admin/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens with the application's secret without going through login.
type JWTHelper struct {
	secret string
	ttl    time.Duration
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	ttl, err := time.ParseDuration(cfg.AccessTokenDuration)
	if err != nil {
		ttl = time.Hour
	}
	return &JWTHelper{secret: cfg.Secret, ttl: ttl}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, h.ttl, userID, role)
}

// CreateExpiredToken returns a token that expired a minute ago, past the validator's leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, -time.Minute, userID, role)
}

func (h *JWTHelper) sign(t *testing.T, ttl time.Duration, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.secret, ttl).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
