// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "naturae_session"

// Session attaches a session id to every request. The id lives in a cookie
// so one browser keeps one cart; it identifies nothing but the in-memory
// state, no authentication is implied. Cookie max-age 0 makes it a session
// cookie, matching the ephemeral cart lifecycle.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, 0, "/", "", false, true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
