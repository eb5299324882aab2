package maintenance

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware blocks write operations while the service runs in read-only
// maintenance mode. Read-only operations (GET) are always allowed, so the
// catalog stays browsable during migrations and backups.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a read-only mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		// Always allow GET requests (read-only)
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		// Allow HEAD and OPTIONS for CORS/preflight
		if c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		if m.isAllowedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		m.respondBlocked(c)
	}
}

// isAllowedPath checks if a path is allowed for write operations in
// read-only mode. Intentionally restrictive - only explicitly allowed
// paths pass through.
func (m *Middleware) isAllowedPath(path string) bool {
	allowedPaths := []string{
		"/health",
		"/ping",
	}

	for _, allowed := range allowedPaths {
		if strings.HasPrefix(path, allowed) {
			return true
		}
	}
	return false
}

// respondBlocked sends a 503 so well-behaved clients retry after the
// maintenance window instead of treating the failure as permanent.
func (m *Middleware) respondBlocked(c *gin.Context) {
	c.Header("Retry-After", "300")
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error":     "service is in read-only maintenance mode",
		"read_only": true,
	})
	c.Abort()
}
