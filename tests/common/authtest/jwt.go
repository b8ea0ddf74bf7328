//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/config"
	"rentaldesk/internal/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// JWTHelper issues tokens shaped like the booking backend's.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID, username string, role user.Role) string {
	t.Helper()
	return h.sign(t, userID, username, role, time.Now().Add(time.Hour))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID, username string, role user.Role) string {
	t.Helper()
	return h.sign(t, userID, username, role, time.Now().Add(-time.Minute))
}

func (h *JWTHelper) sign(t *testing.T, userID, username string, role user.Role, exp time.Time) string {
	t.Helper()
	token, err := jwt.Sign(h.cfg.VerifySecret, jwt.Claims{
		UID:      userID,
		Username: username,
		Role:     role.String(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(exp),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	})
	require.NoError(t, err)
	return token
}

// Session builds an already-decoded session for usecase tests.
func Session(t *testing.T, userID string, role user.Role) *user.Session {
	t.Helper()
	s, err := user.NewSession(user.SessionParams{
		UserID:   userID,
		Username: userID,
		Role:     role.String(),
		Token:    "token-" + userID,
	}, false)
	require.NoError(t, err)
	return s
}
