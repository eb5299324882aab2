// Package auth models authorization as a capability check performed before
// every mutating and admin operation. Identity resolution is pluggable;
// the policy mapping capabilities to minimum roles is explicit instead of
// living in commented-out route guards.
package auth

// Role orders principals by privilege.
type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Capability names a guarded operation group.
type Capability string

const (
	CapBrowseCatalog  Capability = "catalog.browse"
	CapManageCatalog  Capability = "catalog.manage"
	CapManageAccounts Capability = "accounts.manage"
	CapManageBorrows  Capability = "borrows.manage"
	CapBorrow         Capability = "borrows.submit"
)

// Policy decides the minimum role required for a capability.
type Policy interface {
	MinimumRole(c Capability) Role
}

// StaticPolicy is a fixed capability table. Unknown capabilities require
// admin, so a forgotten entry fails closed.
type StaticPolicy map[Capability]Role

func (p StaticPolicy) MinimumRole(c Capability) Role {
	if role, ok := p[c]; ok {
		return role
	}
	return RoleAdmin
}

// DefaultPolicy grants browsing to everyone, borrowing to registered
// users, and all management to admins.
func DefaultPolicy() StaticPolicy {
	return StaticPolicy{
		CapBrowseCatalog:  RoleAnonymous,
		CapBorrow:         RoleUser,
		CapManageCatalog:  RoleAdmin,
		CapManageAccounts: RoleAdmin,
		CapManageBorrows:  RoleAdmin,
	}
}
