package user

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrMissingIdentity = errors.New("token carries no user identity")
)

// Session is the identity decoded once from the backend token. Every
// authorization decision reads Role; nothing compares raw claim strings.
type Session struct {
	userID    string
	username  string
	name      string
	role      Role
	token     string
	expiresAt *time.Time
}

type SessionParams struct {
	UserID    string
	Username  string
	Name      string
	Role      string
	Token     string
	ExpiresAt *time.Time
}

func NewSession(p SessionParams, usernameFallback bool) (*Session, error) {
	if strings.TrimSpace(p.UserID) == "" && strings.TrimSpace(p.Username) == "" {
		return nil, ErrMissingIdentity
	}
	return &Session{
		userID:    p.UserID,
		username:  p.Username,
		name:      p.Name,
		role:      ResolveRole(p.Role, p.Username, usernameFallback),
		token:     p.Token,
		expiresAt: p.ExpiresAt,
	}, nil
}

// ResolveRole normalizes the claimed role. With usernameFallback enabled a
// user literally named "staff" or "admin" is elevated to that role.
func ResolveRole(claimed, username string, usernameFallback bool) Role {
	role, err := NewRole(claimed)
	if err != nil {
		role = RoleCustomer
	}
	if usernameFallback && !role.IsStaff() {
		if byName, nameErr := NewRole(username); nameErr == nil && byName.IsStaff() {
			return byName
		}
	}
	return role
}

func (s *Session) UserID() string {
	if s.userID == "" {
		return s.username
	}
	return s.userID
}

func (s *Session) Username() string      { return s.username }
func (s *Session) Name() string          { return s.name }
func (s *Session) Role() Role            { return s.role }
func (s *Session) Token() string         { return s.token }
func (s *Session) ExpiresAt() *time.Time { return s.expiresAt }

// Key identifies the server-side state owned by this login.
func (s *Session) Key() string {
	sum := sha256.Sum256([]byte(s.token))
	return hex.EncodeToString(sum[:16])
}
