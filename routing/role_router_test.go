package routing_test

import (
	"testing"

	"github.com/jrsteele09/go-ecom-client/routing"
	"github.com/jrsteele09/go-ecom-client/users"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	admin := &users.User{UID: "user-1", RoleName: string(users.RoleAdmin)}
	customer := &users.User{UID: "user-2", RoleName: string(users.RoleCustomer)}

	tests := []struct {
		name     string
		user     *users.User
		path     string
		redirect bool
		target   string
	}{
		{"admin on customer home", admin, "/", true, routing.AdminRoot},
		{"admin on cart", admin, routing.CartRoute, true, routing.AdminRoot},
		{"admin on admin root", admin, routing.AdminRoot, false, ""},
		{"admin on admin subpath", admin, routing.AdminUsersRoute, false, ""},
		{"customer on home", customer, "/", false, ""},
		{"customer on admin root", customer, routing.AdminRoot, true, routing.CustomerRoot},
		{"customer on admin subpath", customer, "/admin/addproduct", true, routing.CustomerRoot},
		{"no user on admin path", nil, routing.AdminRoot, true, routing.CustomerRoot},
		{"no user on customer path", nil, routing.ProductsRoute, false, ""},
		{"admin prefix requires separator", customer, "/administration", false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision := routing.Resolve(tc.user, tc.path)
			require.Equal(t, tc.redirect, decision.Redirect)
			require.Equal(t, tc.target, decision.Target)
		})
	}
}

func TestIsAdminSpace(t *testing.T) {
	require.True(t, routing.IsAdminSpace("/admin"))
	require.True(t, routing.IsAdminSpace("/admin/user/user-1"))
	require.False(t, routing.IsAdminSpace("/"))
	require.False(t, routing.IsAdminSpace("/administration"))
}
