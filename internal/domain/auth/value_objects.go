package auth

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("username and password are required")
)

type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		username: username,
		password: password,
	}, nil
}

func (c Credentials) Username() string {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}
