package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "auth-token"

const contextUserKey = "auth-user"

// SessionResolver maps a raw session token to a live, active user.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (model.AuthUser, error)
}

// Authenticate guards admin routes. Every request re-resolves the raw
// cookie token against the user store; there is no cross-request caching,
// so deactivations and role changes apply on the next request.
type Authenticate struct {
	resolver SessionResolver
	logger   *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver SessionResolver, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, logger: logger}
}

// RequireAdmin rejects requests without a valid session (401) or with a
// non-admin session (403), and puts the resolved user into the gin context
// otherwise.
func (m *Authenticate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		user, err := m.resolver.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			// Invalid, expired, unknown and deactivated all look the same
			// to the client.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		if user.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the session user placed by RequireAdmin.
func CurrentUser(c *gin.Context) (model.AuthUser, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return model.AuthUser{}, false
	}
	user, ok := value.(model.AuthUser)
	return user, ok
}
