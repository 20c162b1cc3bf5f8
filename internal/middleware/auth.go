package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"github.com/docspot/docspot-api/internal/handler"
	"github.com/docspot/docspot-api/internal/model"
)

const (
	// ContextUser is the gin context key the session user is stored
	// under once RequireSession has run.
	ContextUser = "currentUser"

	sessionCacheKey = "session"
	sessionCacheTTL = 30 * time.Second
)

// SessionReader is the slice of the auth service the middleware needs.
type SessionReader interface {
	CurrentUser(ctx context.Context) (*model.User, error)
}

// SessionAuth gates routes on the stored session. Lookups go through a
// short-lived cache; the store subscription wired in main invalidates
// it on every session write, so login and logout take effect at once.
type SessionAuth struct {
	sessions SessionReader
	cache    *gocache.Cache
}

func NewSessionAuth(sessions SessionReader) *SessionAuth {
	return &SessionAuth{
		sessions: sessions,
		cache:    gocache.New(sessionCacheTTL, 2*sessionCacheTTL),
	}
}

// Invalidate drops the cached session. Registered as a store subscriber
// for the session key.
func (m *SessionAuth) Invalidate(string) {
	m.cache.Delete(sessionCacheKey)
}

func (m *SessionAuth) currentUser(c *gin.Context) (*model.User, error) {
	if v, ok := m.cache.Get(sessionCacheKey); ok {
		user := v.(model.User)
		return &user, nil
	}

	user, err := m.sessions.CurrentUser(c.Request.Context())
	if err != nil {
		return nil, err
	}
	if user != nil {
		m.cache.Set(sessionCacheKey, *user, sessionCacheTTL)
	}
	return user, nil
}

// RequireSession rejects anonymous requests with a redirect hint to the
// login page and stores the session user in the context otherwise.
func (m *SessionAuth) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.currentUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to read session"))
			return
		}
		if user == nil {
			c.Header("Location", "/auth")
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
			return
		}

		c.Set(ContextUser, *user)
		c.Next()
	}
}

// RequireRole allows only the given roles past; RequireSession must run
// first.
func (m *SessionAuth) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, handler.NewErrorResponse("permission denied"))
	}
}

// RedirectAuthenticated bounces an already logged-in user away from the
// login page to their dashboard.
func (m *SessionAuth) RedirectAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.currentUser(c)
		if err == nil && user != nil {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user RequireSession placed in the
// context.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}
