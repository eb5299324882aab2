package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Context keys for identity data.
const (
	ContextKeyRole   = "auth_role"
	ContextKeyUserID = "auth_user_id"
)

// Mode selects how identities are resolved.
type Mode string

const (
	// ModeNone grants admin to every request. The original system shipped
	// with its guards commented out; this makes that stance explicit and
	// opt-in instead of a silent bypass.
	ModeNone Mode = "none"

	// ModeToken resolves bearer tokens: the configured admin token grants
	// admin, user API tokens grant user, everything else is anonymous.
	ModeToken Mode = "token"
)

// UserResolver resolves a bearer token to a user id. The actual identity
// store is external to this package.
type UserResolver interface {
	ResolveToken(token string) (uint, error)
}

// Middleware resolves the caller's role and enforces the capability policy.
type Middleware struct {
	mode           Mode
	policy         Policy
	adminTokenHash string // bcrypt hash of the admin token
	users          UserResolver
}

func NewMiddleware(mode Mode, policy Policy, adminTokenHash string, users UserResolver) *Middleware {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Middleware{
		mode:           mode,
		policy:         policy,
		adminTokenHash: adminTokenHash,
		users:          users,
	}
}

// Handler resolves the caller's identity into the request context.
func (m *Middleware) Handler() gin.HandlerFunc {
	if m.mode == ModeNone {
		return func(c *gin.Context) {
			c.Set(ContextKeyRole, RoleAdmin)
			c.Set(ContextKeyUserID, uint(0))
			c.Next()
		}
	}

	return func(c *gin.Context) {
		role, userID := m.resolve(c)
		c.Set(ContextKeyRole, role)
		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

func (m *Middleware) resolve(c *gin.Context) (Role, uint) {
	token := bearerToken(c)
	if token == "" {
		return RoleAnonymous, 0
	}

	if m.adminTokenHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(m.adminTokenHash), []byte(token)); err == nil {
			return RoleAdmin, 0
		}
	}

	if m.users != nil {
		if id, err := m.users.ResolveToken(token); err == nil {
			return RoleUser, id
		}
	}

	return RoleAnonymous, 0
}

// Require guards a route group with a capability check.
func (m *Middleware) Require(capability Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		min := m.policy.MinimumRole(capability)
		if role >= min {
			c.Next()
			return
		}
		if role == RoleAnonymous {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "authentication required"})
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "insufficient privileges"})
	}
}

// GetRole extracts the resolved role from the context.
func GetRole(c *gin.Context) Role {
	if v, ok := c.Get(ContextKeyRole); ok {
		if role, ok := v.(Role); ok {
			return role
		}
	}
	return RoleAnonymous
}

// GetUserID extracts the resolved user id from the context. Zero means
// no user identity (anonymous or admin).
func GetUserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// HashToken produces a bcrypt hash suitable for the admin token config.
func HashToken(token string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
