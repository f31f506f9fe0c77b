package middleware

import (
	"net/http"
	"strings"

	"qualityze-admin-be/config"
	"qualityze-admin-be/internal/services"
	"qualityze-admin-be/internal/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// AuthMiddleware validates the Bearer access token and stores the admin
// session principal in the request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := utils.ValidateToken(strings.TrimPrefix(header, "Bearer "), cfg.JWTSecret)
		if err != nil || claims.TokenType != "access" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(sessionKey, &services.Session{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		c.Next()
	}
}

// GetSession returns the session principal stored by AuthMiddleware, or
// nil on unauthenticated requests (public routes).
func GetSession(c *gin.Context) *services.Session {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	sess, ok := value.(*services.Session)
	if !ok {
		return nil
	}
	return sess
}
