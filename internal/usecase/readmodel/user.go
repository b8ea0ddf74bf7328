package readmodel

import (
	"time"

	"rentaldesk/internal/domain/user"
)

type AuthorizedUserRM struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name,omitempty"`
	Role      user.Role  `json:"role"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func NewAuthorizedUserRM(s *user.Session) *AuthorizedUserRM {
	return &AuthorizedUserRM{
		ID:        s.UserID(),
		Username:  s.Username(),
		Name:      s.Name(),
		Role:      s.Role(),
		ExpiresAt: s.ExpiresAt(),
	}
}
