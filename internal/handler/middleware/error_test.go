//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"rentaldesk/internal/handler/middleware"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/private-error", func(c *gin.Context) {
		_ = c.Error(errs.Validation(errors.New("riders out of range")))
	})
	router.GET("/plain-error", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	router.GET("/panic", func(*gin.Context) {
		panic("unexpected")
	})
	router.GET("/silent", func(*gin.Context) {})

	cases := []struct {
		path string
		code int
		msg  string
	}{
		{path: "/private-error", code: http.StatusUnprocessableEntity, msg: "riders out of range"},
		{path: "/plain-error", code: http.StatusInternalServerError, msg: "Internal server error"},
		{path: "/panic", code: http.StatusInternalServerError, msg: "Internal server error"},
		{path: "/silent", code: http.StatusInternalServerError, msg: "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, tc.path, nil, "")
			body := httptest.AssertErrorResponse(t, rec, tc.code, tc.msg)
			assert.Nil(t, body.Detail)
		})
	}
}
