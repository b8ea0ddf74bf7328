package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/handler/httperr"
	"rentaldesk/internal/pkg/cookie"
	"rentaldesk/internal/pkg/errs"
	"rentaldesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSessionKey  = "session"
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var roleHierarchy = map[user.Role]int{
	user.RoleCustomer: 1,
	user.RoleStaff:    2,
	user.RoleAdmin:    3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetSession(c, session)
		c.Next()
	}
}

// OptionalAuth attaches the session when a valid token is present and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		SetSession(c, session)
		c.Next()
	}
}

// SetSession stores an authenticated session on the request context.
func SetSession(c *gin.Context, session *user.Session) {
	c.Set(ctxSessionKey, session)
	c.Set(ctxUserIDKey, session.UserID())
	c.Set(ctxUserRoleKey, session.Role())
	c.Set("jwt_claims", map[string]any{
		"user_id": session.UserID(),
		"role":    session.Role().String(),
	})
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}

		if !hasMinimumRole(role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrAuthorization, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetSession(c *gin.Context) (*user.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*user.Session)
	return session, ok && session != nil
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
