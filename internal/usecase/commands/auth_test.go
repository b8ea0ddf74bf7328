//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"rentaldesk/internal/domain/auth"
	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/shared"
	"rentaldesk/tests/common/authtest"
	commandsmock "rentaldesk/tests/mock/commands"
	sharedmock "rentaldesk/tests/mock/shared"
	usecasemock "rentaldesk/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	staff := authtest.Session(t, "staff-1", user.RoleStaff)

	tests := []struct {
		name     string
		username string
		password string
		setup    func(*sharedmock.MockAuthGateway, *usecasemock.MockTokenValidator)
		errMark  error
		errIs    error
	}{
		{
			name:     "success",
			username: " maria ",
			password: "secret",
			setup: func(gw *sharedmock.MockAuthGateway, v *usecasemock.MockTokenValidator) {
				gw.EXPECT().Login(ctx, "maria", "secret").Return(&shared.LoginResult{Token: staff.Token()}, nil)
				v.EXPECT().ValidateToken(staff.Token()).Return(staff, nil)
			},
		},
		{
			name:     "blank credentials never reach the backend",
			username: "",
			password: "secret",
			setup:    func(*sharedmock.MockAuthGateway, *usecasemock.MockTokenValidator) {},
			errMark:  errs.ErrValidation,
			errIs:    auth.ErrInvalidCredentials,
		},
		{
			name:     "backend rejects the credentials",
			username: "maria",
			password: "wrong",
			setup: func(gw *sharedmock.MockAuthGateway, _ *usecasemock.MockTokenValidator) {
				gw.EXPECT().Login(ctx, "maria", "wrong").
					Return(nil, errs.Mark(errors.New("Invalid credentials"), errs.ErrTransport))
			},
			errMark: errs.ErrTransport,
		},
		{
			name:     "unreadable token",
			username: "maria",
			password: "secret",
			setup: func(gw *sharedmock.MockAuthGateway, v *usecasemock.MockTokenValidator) {
				gw.EXPECT().Login(ctx, "maria", "secret").Return(&shared.LoginResult{Token: "garbage"}, nil)
				v.EXPECT().ValidateToken("garbage").Return(nil, errs.Mark(errors.New("invalid token"), errs.ErrUnauthenticated))
			},
			errMark: errs.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := sharedmock.NewMockAuthGateway(ctrl)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			purger := commandsmock.NewMockSessionPurger(ctrl)
			tt.setup(gw, validator)
			cmd := commands.NewAuthCommands(gw, validator, purger, discardLogger())

			res, err := cmd.Login(ctx, tt.username, tt.password)

			if tt.errMark != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.errMark))
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, staff.Token(), res.Token)
			assert.Equal(t, user.RoleStaff, res.User.Role)
		})
	}
}

func TestAuthCommands_Logout(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	purger := commandsmock.NewMockSessionPurger(ctrl)
	cmd := commands.NewAuthCommands(nil, nil, purger, discardLogger())
	session := authtest.Session(t, "user-1", user.RoleCustomer)

	purger.EXPECT().Purge(ctx, session.Key()).Return(nil)
	require.NoError(t, cmd.Logout(ctx, session))

	purger.EXPECT().Purge(ctx, session.Key()).Return(errors.New("redis down"))
	assert.Error(t, cmd.Logout(ctx, session))

	assert.NoError(t, cmd.Logout(ctx, nil))
}
