package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Ordering(t *testing.T) {
	assert.True(t, RoleAnonymous < RoleUser)
	assert.True(t, RoleUser < RoleAdmin)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "anonymous", RoleAnonymous.String())
	assert.Equal(t, "user", RoleUser.String())
	assert.Equal(t, "admin", RoleAdmin.String())
}

func TestStaticPolicy_MinimumRole(t *testing.T) {
	policy := StaticPolicy{
		CapBrowseCatalog: RoleAnonymous,
		CapBorrow:        RoleUser,
	}

	assert.Equal(t, RoleAnonymous, policy.MinimumRole(CapBrowseCatalog))
	assert.Equal(t, RoleUser, policy.MinimumRole(CapBorrow))
}

func TestStaticPolicy_UnknownCapabilityFailsClosed(t *testing.T) {
	policy := StaticPolicy{}

	assert.Equal(t, RoleAdmin, policy.MinimumRole(Capability("unknown.capability")))
}

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	assert.Equal(t, RoleAnonymous, policy.MinimumRole(CapBrowseCatalog))
	assert.Equal(t, RoleUser, policy.MinimumRole(CapBorrow))
	assert.Equal(t, RoleAdmin, policy.MinimumRole(CapManageCatalog))
	assert.Equal(t, RoleAdmin, policy.MinimumRole(CapManageAccounts))
	assert.Equal(t, RoleAdmin, policy.MinimumRole(CapManageBorrows))
}
