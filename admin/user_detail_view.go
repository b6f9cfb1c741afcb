package admin

import (
	"sync"

	"github.com/jrsteele09/go-ecom-client/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// UserDetailView backs the single-user detail/edit screen.
type UserDetailView struct {
	view
	api    UsersAPI
	tokens TokenSource

	lock    sync.Mutex
	loading bool
	user    *users.User
}

func NewUserDetailView(apiClient UsersAPI, tokens TokenSource) *UserDetailView {
	return &UserDetailView{
		view:    newView(),
		api:     apiClient,
		tokens:  tokens,
		loading: true,
	}
}

// Load fetches the user with the given identifier.
func (v *UserDetailView) Load(uid string) error {
	defer func() {
		v.lock.Lock()
		v.loading = false
		v.lock.Unlock()
	}()

	token := v.tokens.BearerToken(v.ctx)
	if token == "" {
		return nil
	}

	fetched, err := v.api.GetUser(v.ctx, token, uid)
	if err != nil {
		log.Err(err).Str("uid", uid).Msg("Error fetching user details")
		return errors.Wrap(err, "[UserDetailView.Load]")
	}

	v.lock.Lock()
	v.user = fetched
	v.lock.Unlock()
	return nil
}

// Loading reports whether the first response has arrived yet.
func (v *UserDetailView) Loading() bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.loading
}

// User returns the fetched user, nil when not found.
func (v *UserDetailView) User() *users.User {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.user
}
