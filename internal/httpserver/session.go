package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "storefront_session"
	sessionCtxKey = "sessionKey"
)

// sessionMiddleware assigns every caller a session key, minting a new
// cookie when none is presented. The key scopes the server-side cart.
func sessionMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(sessionCookie)
		if err != nil || key == "" {
			key = uuid.NewString()
			c.SetCookie(sessionCookie, key, int(ttl.Seconds()), "/", "", false, true)
		}
		c.Set(sessionCtxKey, key)
		c.Next()
	}
}

func sessionKey(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
