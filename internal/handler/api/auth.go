package api

import (
	"net/http"
	"time"

	reqdto "rentaldesk/internal/handler/dto/request"
	resdto "rentaldesk/internal/handler/dto/response"
	"rentaldesk/internal/handler/httperr"
	"rentaldesk/internal/pkg/clock"
	"rentaldesk/internal/pkg/config"
	"rentaldesk/internal/pkg/cookie"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cfg          config.Config
	clock        clock.Clock
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config, clk clock.Clock) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cfg:          cfg,
		clock:        clk,
	}
}

// @Summary User login
// @Description Login against the booking service; the token is also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	cookie.SetTokenCookie(c, h.cfg.Cookie, result.Token, h.cookieTTL(result.Session.ExpiresAt()))

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		User:        result.User,
	})
}

func (h *AuthHandler) cookieTTL(expiresAt *time.Time) time.Duration {
	if expiresAt == nil {
		return h.cfg.JWT.SessionTTL()
	}
	if ttl := expiresAt.Sub(h.clock.Now()); ttl > 0 {
		return ttl
	}
	return 0
}

// @Summary User logout
// @Description Drop the session's drafts and cached reservations and clear the cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.authCommands.Logout(c.Request.Context(), session); err != nil {
		httperr.Respond(c, err)
		return
	}

	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the identity decoded from the current token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} readmodel.AuthorizedUserRM
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, readmodel.NewAuthorizedUserRM(session))
}
