package admin

import (
	"context"
	"strings"
	"sync"

	"github.com/jrsteele09/go-ecom-client/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RoleFilterAll passes every role through the users list filter.
const RoleFilterAll = "All"

// UsersAPI is the backend surface the users views need. Implemented by
// *api.Client.
type UsersAPI interface {
	ListUsers(ctx context.Context, bearer string) ([]users.User, error)
	GetUser(ctx context.Context, bearer, uid string) (*users.User, error)
}

// UsersView backs the admin users list. Search and role filtering operate on
// the already-fetched collection and are never sent to the server.
type UsersView struct {
	view
	api    UsersAPI
	tokens TokenSource

	lock    sync.Mutex
	loading bool
	users   []users.User
}

func NewUsersView(apiClient UsersAPI, tokens TokenSource) *UsersView {
	return &UsersView{
		view:    newView(),
		api:     apiClient,
		tokens:  tokens,
		loading: true,
	}
}

// Load fetches the user collection. Without a usable token it leaves the
// list empty, matching the silent fallback of the other admin views.
func (v *UsersView) Load() error {
	defer v.setLoading(false)

	token := v.tokens.BearerToken(v.ctx)
	if token == "" {
		return nil
	}

	fetched, err := v.api.ListUsers(v.ctx, token)
	if err != nil {
		log.Err(err).Msg("Error fetching users")
		return errors.Wrap(err, "[UsersView.Load]")
	}

	v.lock.Lock()
	v.users = fetched
	v.lock.Unlock()
	return nil
}

// Loading reports whether the first response has arrived yet.
func (v *UsersView) Loading() bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.loading
}

func (v *UsersView) setLoading(loading bool) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.loading = loading
}

// Filter selects users by substring search and role equality.
type Filter struct {
	Search string // substring over email, auth type, role, phone, country code
	Role   string // exact role (case-insensitive); RoleFilterAll passes everything
}

// Users returns the fetched collection narrowed by the filter.
func (v *UsersView) Users(filter Filter) []users.User {
	v.lock.Lock()
	defer v.lock.Unlock()

	matched := make([]users.User, 0, len(v.users))
	for _, u := range v.users {
		if matchesSearch(u, filter.Search) && matchesRole(u, filter.Role) {
			matched = append(matched, u)
		}
	}
	return matched
}

func matchesSearch(u users.User, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(u.Email), needle) ||
		strings.Contains(strings.ToLower(u.AuthType), needle) ||
		strings.Contains(strings.ToLower(u.RoleName), needle) ||
		strings.Contains(u.PhoneNumber, search) ||
		strings.Contains(u.CountryCode, search)
}

func matchesRole(u users.User, role string) bool {
	if role == "" || role == RoleFilterAll {
		return true
	}
	return strings.EqualFold(u.RoleName, role)
}
