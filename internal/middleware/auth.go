package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/sessions"
)

// userIDKey is the context key under which the authenticated user ID is stored.
const userIDKey = "userID"

// Auth resolves the session cookie to a user and sets the user ID in the
// context. Requests without a valid, unexpired session are rejected with a
// generic 401 body.
func Auth(store sessions.Storer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessions.CookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		session, err := store.Resolve(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(userIDKey, session.UserID)
		c.Next()
	}
}
