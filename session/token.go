package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenExpiry extracts the expiry claim from an access token without
// verifying the signature. The backend signs its tokens; the client only
// reads exp for diagnostics and refresh scheduling logs.
func TokenExpiry(accessToken string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return time.Time{}, errors.Wrap(err, "[TokenExpiry] parse token")
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("[TokenExpiry] token has no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}
