package session

import "github.com/jrsteele09/go-ecom-client/users"

// SessionData is the current identity and credentials. The Store owns the
// only mutable copy; readers get value snapshots.
type SessionData struct {
	User         *users.User // Authenticated user, nil when signed out
	AccessToken  string      // Short-lived credential for bearer authorization
	RefreshToken string      // Longer-lived credential for access token renewal
	DeviceID     string      // Stable client installation identifier
}

// LoggedIn reports whether a user identity is present.
func (s SessionData) LoggedIn() bool {
	return s.User != nil
}

// RefreshOutcome classifies the result of a refresh attempt so callers can
// make explicit policy decisions instead of inspecting side effects.
type RefreshOutcome int

const (
	// RefreshNoOp means no refresh token or device id was present; nothing
	// was attempted and the session is unchanged.
	RefreshNoOp RefreshOutcome = iota
	// Refreshed means a new access token was obtained.
	Refreshed
	// RefreshFailed means the exchange failed and the session was cleared.
	RefreshFailed
)

type RefreshResult struct {
	Outcome     RefreshOutcome
	AccessToken string // Set only when Outcome is Refreshed
	Err         error  // Set only when Outcome is RefreshFailed
}

// TokenOr returns the freshly refreshed access token when one was obtained,
// otherwise the supplied fallback. Callers use the last known token as the
// fallback.
func (r RefreshResult) TokenOr(fallback string) string {
	if r.Outcome == Refreshed {
		return r.AccessToken
	}
	return fallback
}
