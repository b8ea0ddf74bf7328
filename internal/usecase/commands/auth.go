package commands

import (
	"context"
	"log/slog"

	"rentaldesk/internal/domain/auth"
	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase"
	"rentaldesk/internal/usecase/readmodel"
	"rentaldesk/internal/usecase/shared"
)

type LoginResult struct {
	Token   string
	Session *user.Session
	User    *readmodel.AuthorizedUserRM
}

// SessionPurger drops the server-side state owned by a login.
type SessionPurger interface {
	Purge(ctx context.Context, sessionKey string) error
}

type AuthCommands interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, session *user.Session) error
}

type authCommandsImpl struct {
	gateway   shared.AuthGateway
	validator usecase.TokenValidator
	purger    SessionPurger
	logger    *slog.Logger
}

func NewAuthCommands(gateway shared.AuthGateway, validator usecase.TokenValidator, purger SessionPurger, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		gateway:   gateway,
		validator: validator,
		purger:    purger,
		logger:    logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(username, password)
	if err != nil {
		return nil, errs.Validation(err)
	}

	res, err := a.gateway.Login(ctx, credentials.Username(), credentials.Password())
	if err != nil {
		return nil, err
	}

	session, err := a.validator.ValidateToken(res.Token)
	if err != nil {
		a.logger.Warn("backend issued an unreadable token", slog.String("username", credentials.Username()))
		return nil, err
	}

	a.logger.Info("user logged in",
		slog.String("user_id", session.UserID()),
		slog.String("role", session.Role().String()))

	return &LoginResult{
		Token:   res.Token,
		Session: session,
		User:    readmodel.NewAuthorizedUserRM(session),
	}, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, session *user.Session) error {
	if session == nil {
		return nil
	}
	if err := a.purger.Purge(ctx, session.Key()); err != nil {
		return err
	}
	a.logger.Info("user logged out", slog.String("user_id", session.UserID()))
	return nil
}
