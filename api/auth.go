package api

import (
	"context"

	"github.com/jrsteele09/go-ecom-client/users"
	"github.com/pkg/errors"
)

// Actions accepted by the authenticate endpoint.
const (
	ActionSignIn = "sign_in"
	ActionSignUp = "sign_up"
)

// AuthenticateRequest is the payload for POST /auth/authenticate. Exactly one
// of Email or Mobile is set, depending on AuthType; Mobile carries the country
// code prefix.
type AuthenticateRequest struct {
	AuthType   string `json:"auth_type"`
	Email      string `json:"email,omitempty"`
	Mobile     string `json:"mobile,omitempty"`
	Password   string `json:"password"`
	DeviceID   string `json:"device_id"`
	DeviceType string `json:"device_type"`
	Action     string `json:"action"`
}

// VerifyOTPRequest is the payload for POST /auth/authenticate-pass, completing
// an email sign-up.
type VerifyOTPRequest struct {
	AuthType   string `json:"auth_type"`
	Email      string `json:"email"`
	OTP        string `json:"otp"`
	DeviceID   string `json:"device_id"`
	DeviceType string `json:"device_type"`
}

// AuthResponse is the envelope returned by the authenticate, OTP-verify and
// resend-OTP endpoints. Duration is the OTP validity window as "mm:ss" and is
// only present when an OTP challenge was issued.
type AuthResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	Duration     string      `json:"duration,omitempty"`
	User         *users.User `json:"user,omitempty"`
	JWTToken     string      `json:"jwt_token,omitempty"`
	RefreshToken string      `json:"refresh_token,omitempty"`
}

// Authenticate signs a user in or starts a sign-up. A success response with
// Success=false is an application-level failure and is returned as-is so the
// caller can surface Message; only transport and HTTP errors return err.
func (c *Client) Authenticate(ctx context.Context, req AuthenticateRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/auth/authenticate", "", req, &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.Authenticate]")
	}
	return &resp, nil
}

// VerifyOTP completes an email sign-up with the one-time code.
func (c *Client) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/auth/authenticate-pass", "", req, &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.VerifyOTP]")
	}
	return &resp, nil
}

// ResendOTP reissues the OTP challenge for an in-progress email sign-up.
func (c *Client) ResendOTP(ctx context.Context, email string) (*AuthResponse, error) {
	body := struct {
		AuthType string `json:"auth_type"`
		Email    string `json:"email"`
	}{AuthType: string(users.AuthEmail), Email: email}

	var resp AuthResponse
	if err := c.postJSON(ctx, "/auth/resend-otp", "", body, &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.ResendOTP]")
	}
	return &resp, nil
}

// TokenPair is the outcome of a successful refresh-token exchange. The
// refresh token is empty when the server did not rotate it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// refreshResponse tolerates both field spellings the backend has been seen to
// use for the refreshed tokens; the snake_case pair matches the authenticate
// endpoint and wins when both are present.
type refreshResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	JWTToken        string `json:"jwt_token"`
	RefreshToken    string `json:"refresh_token"`
	AccessTokenAlt  string `json:"accessToken"`
	RefreshTokenAlt string `json:"refreshToken"`
}

func (r *refreshResponse) tokens() TokenPair {
	pair := TokenPair{AccessToken: r.JWTToken, RefreshToken: r.RefreshToken}
	if pair.AccessToken == "" {
		pair.AccessToken = r.AccessTokenAlt
	}
	if pair.RefreshToken == "" {
		pair.RefreshToken = r.RefreshTokenAlt
	}
	return pair
}

// RefreshToken exchanges a refresh token for a new access token. Device
// identity scopes the refresh token's validity server-side.
func (c *Client) RefreshToken(ctx context.Context, refreshToken, deviceID string) (*TokenPair, error) {
	body := struct {
		RefreshToken string `json:"refresh_token"`
		DeviceID     string `json:"device_id"`
	}{RefreshToken: refreshToken, DeviceID: deviceID}

	var resp refreshResponse
	if err := c.postJSON(ctx, "/auth/refresh-token", "", body, &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.RefreshToken]")
	}
	if !resp.Success {
		return nil, errors.Wrap(&APIError{Message: resp.Message}, "[Client.RefreshToken]")
	}
	pair := resp.tokens()
	if pair.AccessToken == "" {
		return nil, errors.New("[Client.RefreshToken] no access token in response")
	}
	return &pair, nil
}
