package api

import (
	"net/http"

	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/handler/httperr"
	"rentaldesk/internal/handler/middleware"
	"rentaldesk/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errMissingSession = errs.New("session missing from context")

// requireSession reads the session RequireAuth stored; it aborts with 500
// when the route was wired without the middleware.
func requireSession(c *gin.Context) (*user.Session, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSession, "Internal server error", nil)
		return nil, false
	}
	return session, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return false
	}
	return true
}

func writeMapped[T any](c *gin.Context, status int, resp T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}
