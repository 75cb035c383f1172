package domain

// RoutePolicy is the static authorization metadata attached to a route at
// registration time. It is fixed at startup and read-only afterwards.
type RoutePolicy struct {
	// Public routes skip credential resolution entirely; no Identity is
	// attached to the request regardless of header contents.
	Public bool
	// AllowedRoles is the exact, exhaustive set of roles admitted to the
	// route. Empty means any authenticated role.
	AllowedRoles RoleSet
}

// PublicRoute marks a route as requiring no credential.
func PublicRoute() RoutePolicy {
	return RoutePolicy{Public: true}
}

// AnyAuthenticated admits every valid credential without role restriction.
func AnyAuthenticated() RoutePolicy {
	return RoutePolicy{}
}

// RequireRoles admits only the listed roles.
func RequireRoles(roles ...Role) RoutePolicy {
	return RoutePolicy{AllowedRoles: roles}
}

// Allows reports whether a caller with the given role passes the policy.
func (p RoutePolicy) Allows(r Role) bool {
	if len(p.AllowedRoles) == 0 {
		return true
	}
	return p.AllowedRoles.Contains(r)
}
