package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/response"
)

// RequireRoles lets the request through when the caller holds one of the roles.
// It must run after JWT.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
