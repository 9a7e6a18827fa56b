package middleware

import (
	"net/http"
	"strings"

	"quizapp/services"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token and stashes the session identity in the
// request context for handlers and the role gates.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please log in to access this page"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := services.ParseToken(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please log in to access this page"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)
		c.Set("is_admin", claims.IsAdmin)
		c.Set("session_id", claims.SessionID)

		c.Next()
	}
}

// RequireAdmin gates admin routes. A logged-in non-admin gets the same status
// an anonymous caller would, only the message differs.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// UserOnly blocks admins from the quiz-taking routes.
func UserOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetBool("is_admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin cannot access user features"})
			return
		}
		c.Next()
	}
}
