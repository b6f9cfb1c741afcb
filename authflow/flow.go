// Package authflow drives the login / sign-up / OTP state machine over the
// backend's authenticate endpoints.
package authflow

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-ecom-client/api"
	"github.com/jrsteele09/go-ecom-client/session"
	"github.com/jrsteele09/go-ecom-client/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Mode int

const (
	ModeLogin Mode = iota
	ModeSignUp
)

type Channel int

const (
	ChannelEmail Channel = iota
	ChannelMobile
)

// Notice levels for user-visible feedback.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier receives user-visible feedback from the flow. Implementations
// render it however the surface wants (toast, status line); the flow never
// blocks on it.
type Notifier interface {
	Notify(level Level, message string)
	Clear()
}

// NopNotifier discards all feedback.
type NopNotifier struct{}

func (NopNotifier) Notify(Level, string) {}
func (NopNotifier) Clear()               {}

// API is the subset of the backend client the flow drives. Implemented by
// *api.Client.
type API interface {
	Authenticate(ctx context.Context, req api.AuthenticateRequest) (*api.AuthResponse, error)
	VerifyOTP(ctx context.Context, req api.VerifyOTPRequest) (*api.AuthResponse, error)
	ResendOTP(ctx context.Context, email string) (*api.AuthResponse, error)
}

// SessionWriter establishes the session once authentication succeeds.
// Implemented by *session.Store.
type SessionWriter interface {
	SetAuth(user *users.User, accessToken, refreshToken string) error
}

// Credentials are the user-entered inputs for a submit.
type Credentials struct {
	Email       string
	CountryCode string
	Mobile      string
	Password    string
}

// Snapshot is the observable flow state.
type Snapshot struct {
	Mode             Mode
	Channel          Channel
	OTPPending       bool
	CountdownSeconds int
}

var ErrCountdownActive = errors.New("resend not permitted until countdown expires")

// Controller is the auth flow state machine. One controller backs one auth
// surface; its state is transient and never persisted.
type Controller struct {
	api        API
	store      SessionWriter
	device     session.Device
	notifier   Notifier
	countdown  *Countdown
	onComplete func() // invoked when a session is established

	lock       sync.Mutex
	mode       Mode
	channel    Channel
	otpPending bool
	email      string // identifier captured at submit, used for verify/resend
}

type ControllerOption func(*Controller)

// WithNotifier sets the feedback sink.
func WithNotifier(n Notifier) ControllerOption {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithOnComplete sets the callback fired when the flow terminates with an
// established session (the navigation hook).
func WithOnComplete(fn func()) ControllerOption {
	return func(c *Controller) {
		c.onComplete = fn
	}
}

// WithCountdown overrides the OTP countdown timer (primarily for testing).
func WithCountdown(cd *Countdown) ControllerOption {
	return func(c *Controller) {
		c.countdown = cd
	}
}

func NewController(apiClient API, store SessionWriter, device session.Device, options ...ControllerOption) (*Controller, error) {
	if apiClient == nil {
		return nil, errors.New("[NewController] api client is required")
	}
	if store == nil {
		return nil, errors.New("[NewController] session store is required")
	}

	c := &Controller{
		api:        apiClient,
		store:      store,
		device:     device,
		notifier:   NopNotifier{},
		countdown:  NewCountdown(),
		onComplete: func() {},
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// State returns the observable flow state.
func (c *Controller) State() Snapshot {
	c.lock.Lock()
	defer c.lock.Unlock()
	return Snapshot{
		Mode:             c.mode,
		Channel:          c.channel,
		OTPPending:       c.otpPending,
		CountdownSeconds: c.countdown.Remaining(),
	}
}

// ToggleMode switches between login and sign-up, resetting any OTP-pending
// state and clearing displayed feedback.
func (c *Controller) ToggleMode() {
	c.lock.Lock()
	if c.mode == ModeLogin {
		c.mode = ModeSignUp
	} else {
		c.mode = ModeLogin
	}
	c.otpPending = false
	c.lock.Unlock()

	c.countdown.Stop()
	c.notifier.Clear()
}

// SetChannel switches between email and mobile, resetting any OTP-pending
// state and clearing displayed feedback.
func (c *Controller) SetChannel(channel Channel) {
	c.lock.Lock()
	c.channel = channel
	c.otpPending = false
	c.lock.Unlock()

	c.countdown.Stop()
	c.notifier.Clear()
}

// Submit posts the credentials. On sign-in success (or mobile sign-up) the
// session is established and the flow terminates. On email sign-up success
// the flow transitions to OTP-pending with a countdown from the server
// duration. Application-level failures are surfaced via the notifier and the
// flow stays where it is; only transport/HTTP errors are returned.
func (c *Controller) Submit(ctx context.Context, creds Credentials) error {
	c.lock.Lock()
	mode, channel := c.mode, c.channel
	c.lock.Unlock()

	req := api.AuthenticateRequest{
		AuthType:   string(users.AuthEmail),
		Password:   creds.Password,
		DeviceID:   c.device.ID,
		DeviceType: string(c.device.Type),
		Action:     api.ActionSignIn,
	}
	if mode == ModeSignUp {
		req.Action = api.ActionSignUp
	}
	if channel == ChannelEmail {
		req.Email = creds.Email
	} else {
		req.AuthType = string(users.AuthMobile)
		req.Mobile = creds.CountryCode + creds.Mobile
	}

	resp, err := c.api.Authenticate(ctx, req)
	if err != nil {
		log.Err(err).Msg("Authenticate request failed")
		c.notifier.Notify(LevelError, "Something went wrong. Try again!")
		return errors.Wrap(err, "[Controller.Submit]")
	}

	if !resp.Success {
		c.notifier.Notify(LevelError, messageOr(resp.Message, "Error occurred"))
		return nil
	}

	if mode == ModeSignUp && channel == ChannelEmail {
		c.lock.Lock()
		c.otpPending = true
		c.email = creds.Email
		c.lock.Unlock()

		c.countdown.Start(ParseDuration(resp.Duration))
		c.notifier.Notify(LevelSuccess, messageOr(resp.Message, "OTP sent successfully"))
		return nil
	}

	return c.establishSession(resp, "Login successful!")
}

// VerifyOTP completes an email sign-up. Success establishes the session and
// resets the flow to login mode; failure keeps the flow OTP-pending.
func (c *Controller) VerifyOTP(ctx context.Context, otp string) error {
	c.lock.Lock()
	pending, email := c.otpPending, c.email
	c.lock.Unlock()

	if !pending {
		return errors.New("[Controller.VerifyOTP] no OTP challenge pending")
	}

	resp, err := c.api.VerifyOTP(ctx, api.VerifyOTPRequest{
		AuthType:   string(users.AuthEmail),
		Email:      email,
		OTP:        otp,
		DeviceID:   c.device.ID,
		DeviceType: string(c.device.Type),
	})
	if err != nil {
		log.Err(err).Msg("OTP verification request failed")
		c.notifier.Notify(LevelError, "Something went wrong. Try again!")
		return errors.Wrap(err, "[Controller.VerifyOTP]")
	}

	if !resp.Success {
		c.notifier.Notify(LevelError, messageOr(resp.Message, "OTP verification failed"))
		return nil
	}

	return c.establishSession(resp, "Sign Up successful!")
}

// ResendOTP reissues the OTP challenge. Only permitted once the countdown has
// reached zero; the countdown restarts from the server-provided duration.
func (c *Controller) ResendOTP(ctx context.Context) error {
	if !c.countdown.Expired() {
		return ErrCountdownActive
	}

	c.lock.Lock()
	email := c.email
	c.lock.Unlock()

	if email == "" {
		c.notifier.Notify(LevelError, "Please enter your email")
		return nil
	}

	resp, err := c.api.ResendOTP(ctx, email)
	if err != nil {
		log.Err(err).Msg("OTP resend request failed")
		c.notifier.Notify(LevelError, "Something went wrong. Try again!")
		return errors.Wrap(err, "[Controller.ResendOTP]")
	}

	if !resp.Success {
		c.notifier.Notify(LevelError, messageOr(resp.Message, "Failed to resend OTP"))
		return nil
	}

	c.countdown.Start(ParseDuration(resp.Duration))
	c.notifier.Notify(LevelSuccess, messageOr(resp.Message, "OTP resent successfully"))
	return nil
}

func (c *Controller) establishSession(resp *api.AuthResponse, successMessage string) error {
	if err := c.store.SetAuth(resp.User, resp.JWTToken, resp.RefreshToken); err != nil {
		c.notifier.Notify(LevelError, "Something went wrong. Try again!")
		return errors.Wrap(err, "[Controller.establishSession] SetAuth")
	}

	c.lock.Lock()
	c.otpPending = false
	c.mode = ModeLogin
	c.email = ""
	c.lock.Unlock()

	c.countdown.Stop()
	c.notifier.Notify(LevelSuccess, successMessage)
	c.onComplete()
	return nil
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
