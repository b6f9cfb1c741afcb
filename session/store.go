package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jrsteele09/go-ecom-client/api"
	"github.com/jrsteele09/go-ecom-client/internal/utils"
	"github.com/jrsteele09/go-ecom-client/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// TokenRefresher exchanges a refresh token for a new token pair. Implemented
// by *api.Client.
type TokenRefresher interface {
	RefreshToken(ctx context.Context, refreshToken, deviceID string) (*api.TokenPair, error)
}

// Store is the single source of truth for the current session. It keeps the
// in-memory state and the durable entries in step: writes hit storage first,
// then memory under the lock, so readers never observe a partial update.
type Store struct {
	repo      Repo
	refresher TokenRefresher

	lock sync.RWMutex
	data SessionData
}

// NewStore builds a store hydrated from durable storage. A missing or
// corrupt user entry hydrates as signed-out rather than failing.
func NewStore(repo Repo, refresher TokenRefresher) (*Store, error) {
	if repo == nil {
		return nil, errors.New("[NewStore] repo is required")
	}
	if refresher == nil {
		return nil, errors.New("[NewStore] refresher is required")
	}

	s := &Store{repo: repo, refresher: refresher}
	s.data = hydrate(repo)
	return s, nil
}

func hydrate(repo Repo) SessionData {
	var data SessionData
	if raw, err := repo.Get(KeyUser); err == nil && raw != "" {
		var u users.User
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			data.User = utils.Ptr(u)
		}
	}
	data.AccessToken, _ = repo.Get(KeyAccessToken)
	data.RefreshToken, _ = repo.Get(KeyRefreshToken)
	data.DeviceID, _ = repo.Get(KeyDeviceID)
	return data
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() SessionData {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.data
}

// SetAuth persists the user and both tokens and updates the in-memory state.
// An empty refresh token leaves the existing refresh token in place (the
// authenticate endpoint omits it on some responses).
func (s *Store) SetAuth(user *users.User, accessToken, refreshToken string) error {
	serialized, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "[Store.SetAuth] marshal user")
	}
	if err := s.repo.Set(KeyUser, string(serialized)); err != nil {
		return errors.Wrap(err, "[Store.SetAuth] persist user")
	}
	if err := s.repo.Set(KeyAccessToken, accessToken); err != nil {
		return errors.Wrap(err, "[Store.SetAuth] persist access token")
	}
	if refreshToken != "" {
		if err := s.repo.Set(KeyRefreshToken, refreshToken); err != nil {
			return errors.Wrap(err, "[Store.SetAuth] persist refresh token")
		}
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.data.User = user
	s.data.AccessToken = accessToken
	if refreshToken != "" {
		s.data.RefreshToken = refreshToken
	}
	return nil
}

// Logout clears the session from memory and durable storage. Device identity
// survives a logout. Idempotent.
func (s *Store) Logout() {
	_ = s.repo.Delete(KeyUser)
	_ = s.repo.Delete(KeyAccessToken)
	_ = s.repo.Delete(KeyRefreshToken)

	s.lock.Lock()
	defer s.lock.Unlock()
	s.data.User = nil
	s.data.AccessToken = ""
	s.data.RefreshToken = ""
}

// RefreshAuth renews the access token using the stored refresh token. With no
// refresh token or device id it returns RefreshNoOp without a network call.
// Any failure clears the session: an unrefreshable session is treated as no
// session.
func (s *Store) RefreshAuth(ctx context.Context) RefreshResult {
	s.lock.RLock()
	refreshToken, deviceID := s.data.RefreshToken, s.data.DeviceID
	s.lock.RUnlock()

	if refreshToken == "" || deviceID == "" {
		return RefreshResult{Outcome: RefreshNoOp}
	}

	pair, err := s.refresher.RefreshToken(ctx, refreshToken, deviceID)
	if err != nil {
		log.Warn().Err(err).Msg("Token refresh failed, clearing session")
		s.Logout()
		return RefreshResult{Outcome: RefreshFailed, Err: err}
	}

	if err := s.repo.Set(KeyAccessToken, pair.AccessToken); err != nil {
		log.Warn().Err(err).Msg("Failed to persist refreshed access token")
	}
	if pair.RefreshToken != "" {
		if err := s.repo.Set(KeyRefreshToken, pair.RefreshToken); err != nil {
			log.Warn().Err(err).Msg("Failed to persist rotated refresh token")
		}
	}

	s.lock.Lock()
	s.data.AccessToken = pair.AccessToken
	if pair.RefreshToken != "" {
		s.data.RefreshToken = pair.RefreshToken
	}
	s.lock.Unlock()

	return RefreshResult{Outcome: Refreshed, AccessToken: pair.AccessToken}
}

// BearerToken returns the token views should use for authorization headers,
// preferring a freshly refreshed token over the stored one. Empty when no
// usable token exists.
func (s *Store) BearerToken(ctx context.Context) string {
	result := s.RefreshAuth(ctx)
	return result.TokenOr(s.Snapshot().AccessToken)
}

// SetDevice records the device identifier on the session state. Called once
// at startup after EnsureDevice.
func (s *Store) SetDevice(deviceID string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.data.DeviceID = deviceID
}
