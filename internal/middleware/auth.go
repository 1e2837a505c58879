package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/auth"
	"servimarket_backend/internal/config"
	"servimarket_backend/internal/models"
	"servimarket_backend/pkg/apperrors"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "userRole"
)

// AuthMiddleware validates the Bearer token and stores the caller's identity
// on the gin context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1], cfg.JWT.Secret)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated user has one of the
// given roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextRoleKey)
		if !exists {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		role, ok := value.(models.UserRole)
		if ok {
			for _, allowed := range roles {
				if role == allowed {
					c.Next()
					return
				}
			}
		}

		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		c.Abort()
	}
}

// CurrentUserID returns the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) string {
	if id, exists := c.Get(ContextUserIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentRole returns the authenticated user's role.
func CurrentRole(c *gin.Context) models.UserRole {
	if value, exists := c.Get(ContextRoleKey); exists {
		if role, ok := value.(models.UserRole); ok {
			return role
		}
	}
	return ""
}
