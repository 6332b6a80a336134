package token

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which the middleware stores
// the verified user id.
const ContextUserID = "userID"

// CookieName is the HTTP-only cookie carrying the session token for
// browser clients.
const CookieName = "auth"

// AuthRequired returns a Gin middleware that verifies the session token
// and restricts access to authenticated users. The token is read from the
// Authorization header first, then from the auth cookie.
func AuthRequired(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := fromRequest(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		userID, err := m.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user id placed by AuthRequired.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func fromRequest(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie
	}
	return ""
}
