package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/pkg/helpers"
	"github.com/edulab/elearning-api/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxUserIDKey = "userID"
	CtxRoleKey   = "userRole"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Empty string when absent or malformed.
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Auth validates the bearer token and injects the subject id and role into
// the Gin context. Verification is stateless: no session lookup, no
// revocation list.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxRoleKey, string(claims.Role))
		c.Next()
	}
}

// RoleAllowed is the pure authorization predicate: membership of role in
// the allow-list.
func RoleAllowed(role entity.Role, allowed []entity.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRoles rejects authenticated identities whose role is outside the
// allow-list. Must be chained after Auth.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.Role(c.GetString(CtxRoleKey))
		if !RoleAllowed(role, roles) {
			resp := response.Error[any](c, http.StatusForbidden, "insufficient role", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Next()
	}
}
