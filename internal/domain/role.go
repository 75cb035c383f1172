package domain

import "fmt"

// Role is the fixed enumeration of staff roles. There is no hierarchy
// inference at request time: every route declares the exact set of roles it
// admits (OWNER does not implicitly inherit MANAGER routes, and so on).
type Role string

const (
	RoleOwner        Role = "OWNER"
	RoleManager      Role = "MANAGER"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleStylist      Role = "STYLIST"
	RoleSuperAdmin   Role = "SUPER_ADMIN"
)

// AllRoles lists every valid role, in privilege-documentation order.
var AllRoles = []Role{RoleOwner, RoleManager, RoleReceptionist, RoleStylist, RoleSuperAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleReceptionist, RoleStylist, RoleSuperAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw claim value into a Role, rejecting unknowns.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// RoleSet is an explicit allow-list of roles for a route.
type RoleSet []Role

// Contains reports whether the set includes r. Empty-set semantics ("any
// authenticated role") are decided by RoutePolicy.Allows, not here.
func (s RoleSet) Contains(r Role) bool {
	for _, allowed := range s {
		if allowed == r {
			return true
		}
	}
	return false
}

// Strings renders the set for log and error messages.
func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}
