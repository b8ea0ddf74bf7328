//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/config"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/pkg/jwt"
	"rentaldesk/internal/usecase"
	"rentaldesk/tests/common/authtest"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.Sign(secret, claims)
	require.NoError(t, err)
	return token
}

func TestTokenValidator_ValidateToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	tests := []struct {
		name        string
		cfg         config.JWTConfig
		claims      jwt.Claims
		token       string
		wantRole    user.Role
		wantUserID  string
		wantErr     bool
		checkExpiry bool
	}{
		{
			name: "staff token",
			cfg:  config.JWTConfig{VerifySecret: secret},
			claims: jwt.Claims{UID: "u-1", Username: "maria", Role: "Staff",
				RegisteredClaims: jwtlib.RegisteredClaims{ExpiresAt: jwtlib.NewNumericDate(exp)}},
			wantRole:    user.RoleStaff,
			wantUserID:  "u-1",
			checkExpiry: true,
		},
		{
			name:       "unknown role becomes customer",
			cfg:        config.JWTConfig{VerifySecret: secret},
			claims:     jwt.Claims{UID: "u-2", Username: "staff", Role: "guest"},
			wantRole:   user.RoleCustomer,
			wantUserID: "u-2",
		},
		{
			name:       "username fallback when enabled",
			cfg:        config.JWTConfig{VerifySecret: secret, UsernameRoleFallback: true},
			claims:     jwt.Claims{UID: "u-3", Username: "admin"},
			wantRole:   user.RoleAdmin,
			wantUserID: "u-3",
		},
		{
			name:    "missing identity",
			cfg:     config.JWTConfig{VerifySecret: secret},
			claims:  jwt.Claims{Role: "staff"},
			wantErr: true,
		},
		{
			name:    "garbage token",
			cfg:     config.JWTConfig{VerifySecret: secret},
			token:   "not-a-token",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := usecase.NewTokenValidator(jwt.NewDecoder(tt.cfg.VerifySecret), tt.cfg)
			token := tt.token
			if token == "" {
				token = sign(t, tt.claims)
			}

			session, err := validator.ValidateToken(token)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, session.Role())
			assert.Equal(t, tt.wantUserID, session.UserID())
			assert.Equal(t, token, session.Token())
			require.NotNil(t, session.ExpiresAt())
			if tt.checkExpiry {
				assert.True(t, exp.Equal(*session.ExpiresAt()))
			}
		})
	}
}

func TestTokenValidator_Expiry(t *testing.T) {
	cfg := config.JWTConfig{VerifySecret: secret}
	helper := authtest.NewJWTHelper(cfg)
	validator := usecase.NewTokenValidator(jwt.NewDecoder(secret), cfg)

	session, err := validator.ValidateToken(helper.GenerateToken(t, "u-9", "kenji", user.RoleStaff))
	require.NoError(t, err)
	assert.Equal(t, user.RoleStaff, session.Role())

	_, err = validator.ValidateToken(helper.CreateExpiredToken(t, "u-9", "kenji", user.RoleStaff))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
}
