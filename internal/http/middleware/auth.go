package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"superpump.app/api/common/logger"
	"superpump.app/api/internal/model"
	"superpump.app/api/internal/service"
)

const currentUserKey = "currentUser"

// RequireSession authenticates the request via the Authorization bearer token
// and attaches the resolved user to the gin context.
func RequireSession(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			UserID: logger.Ptr(user.ID),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireSession.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
