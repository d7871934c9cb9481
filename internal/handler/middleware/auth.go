package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"hostel-admin/internal/domain/user"
	"hostel-admin/internal/handler/httperr"
	"hostel-admin/internal/pkg/cookie"
	"hostel-admin/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken   = errors.New("access token required")
	errForbiddenRole  = errors.New("role not allowed")
	errMissingContext = errors.New("auth context missing")
)

// TokenValidator checks a staff session token.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}
		role, err := user.NewRole(claims.Role)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.UserID.String(),
			"role":    string(role),
		})
		c.Next()
	}
}

// RequireRoleAtLeast admits minRole and every role ranked above it.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return m.requireRole(func(r user.Role) bool { return r.AtLeast(minRole) })
}

// RequireAnyRole admits each listed role exactly, for routes whose audience does not
// follow the rank order (housekeeping staff may update the board but not read guests).
func (m *AuthMiddleware) RequireAnyRole(roles ...user.Role) gin.HandlerFunc {
	return m.requireRole(func(r user.Role) bool { return slices.Contains(roles, r) })
}

func (m *AuthMiddleware) requireRole(allowed func(user.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// RequireAuth did not run first
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingContext, "Internal server error", nil)
			return
		}

		if !allowed(role) {
			httperr.AbortWithError(c, http.StatusForbidden, errForbiddenRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
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
