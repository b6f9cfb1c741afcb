// Package routing gates navigation between customer and admin views based on
// the session's role attribute.
package routing

import (
	"strings"

	"github.com/jrsteele09/go-ecom-client/users"
)

// Decision is the outcome of evaluating a navigation request.
type Decision struct {
	Redirect bool
	Target   string // destination path when Redirect is true
}

// IsAdminSpace reports whether a path belongs to the admin console.
func IsAdminSpace(path string) bool {
	return path == AdminRoot || strings.HasPrefix(path, AdminRoot+"/")
}

// Resolve evaluates a navigation request against the current user. Admins
// requesting customer-space paths are redirected to the admin root; anyone
// without the admin role requesting admin-space paths is redirected to the
// customer root. Pure predicate: evaluated on every navigation, no caching,
// no side effects.
func Resolve(user *users.User, path string) Decision {
	adminSpace := IsAdminSpace(path)

	if user.IsAdmin() {
		if !adminSpace {
			return Decision{Redirect: true, Target: AdminRoot}
		}
		return Decision{}
	}

	if adminSpace {
		return Decision{Redirect: true, Target: CustomerRoot}
	}
	return Decision{}
}
