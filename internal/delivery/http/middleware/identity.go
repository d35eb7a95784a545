package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller identity. Authentication itself is an
// upstream collaborator's job; this service only needs the identifier.
const UserIDHeader = "X-User-ID"

const ContextUserID = "user_id"

type IdentityMiddleware struct{}

func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// RequireUser extracts the user id from the request header and stores it
// in the gin context for handlers.
func (m *IdentityMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + UserIDHeader + " header",
			})
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}
