//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/handler/middleware"
	"rentaldesk/internal/pkg/cookie"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/tests/common/authtest"
	"rentaldesk/tests/common/httptest"
	usecasemock "rentaldesk/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	whoami := func(c *gin.Context) {
		session, ok := middleware.GetSession(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": session.UserID()})
	}
	router.GET("/private", auth.RequireAuth(), whoami)
	router.GET("/staff", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleStaff), whoami)
	router.GET("/public", auth.OptionalAuth(), whoami)
	router.GET("/misconfigured", auth.RequireRoleAtLeast(user.RoleStaff), whoami)
	return router, validator
}

func TestRequireAuth(t *testing.T) {
	customer := authtest.Session(t, "user-1", user.RoleCustomer)

	t.Run("missing token", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("bad").Return(nil, errs.Mark(errors.New("expired"), errs.ErrUnauthenticated))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "bad")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("bearer token", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken(customer.Token()).Return(customer, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, customer.Token())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id":"user-1"}`, rec.Body.String())
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("from-cookie").Return(customer, nil)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "from-cookie"}}
		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/private", nil, cookies, "from-header")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	cases := []struct {
		name string
		role user.Role
		code int
	}{
		{name: "customer is rejected", role: user.RoleCustomer, code: http.StatusForbidden},
		{name: "staff passes", role: user.RoleStaff, code: http.StatusOK},
		{name: "admin passes", role: user.RoleAdmin, code: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, validator := newAuthRouter(t)
			session := authtest.Session(t, "u-1", tc.role)
			validator.EXPECT().ValidateToken(session.Token()).Return(session, nil)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil, session.Token())

			assert.Equal(t, tc.code, rec.Code)
		})
	}

	t.Run("without RequireAuth", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/misconfigured", nil, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	router, validator := newAuthRouter(t)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"anonymous":true}`, rec.Body.String())

	validator.EXPECT().ValidateToken("bad").Return(nil, errs.ErrUnauthenticated)
	rec = httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, "bad")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"anonymous":true}`, rec.Body.String())
}
