package usecase

import (
	"time"

	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/config"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*user.Session, error)
}

type tokenValidatorImpl struct {
	decoder          *jwt.Decoder
	usernameFallback bool
	defaultTTL       time.Duration
	now              func() time.Time
}

func NewTokenValidator(decoder *jwt.Decoder, cfg config.JWTConfig) TokenValidator {
	return &tokenValidatorImpl{
		decoder:          decoder,
		usernameFallback: cfg.UsernameRoleFallback,
		defaultTTL:       cfg.SessionTTL(),
		now:              time.Now,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*user.Session, error) {
	claims, err := t.decoder.Decode(tokenString)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnauthenticated)
	}

	expiresAt := claims.Expiry()
	if expiresAt == nil {
		fallback := t.now().Add(t.defaultTTL)
		expiresAt = &fallback
	}

	session, err := user.NewSession(user.SessionParams{
		UserID:    claims.UserID(),
		Username:  claims.Username,
		Name:      claims.Name,
		Role:      claims.Role,
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}, t.usernameFallback)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnauthenticated)
	}
	return session, nil
}
