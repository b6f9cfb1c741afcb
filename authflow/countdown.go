package authflow

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultOTPSeconds is used when the server omits the OTP validity duration
// or sends one that cannot be parsed.
const DefaultOTPSeconds = 180

// ParseDuration converts a server-provided "mm:ss" duration into seconds.
// Non-digit, non-colon characters are stripped first. Anything unparseable
// falls back to DefaultOTPSeconds.
func ParseDuration(duration string) int {
	cleaned := make([]rune, 0, len(duration))
	for _, r := range duration {
		if (r >= '0' && r <= '9') || r == ':' {
			cleaned = append(cleaned, r)
		}
	}

	parts := strings.SplitN(string(cleaned), ":", 2)
	mins, err := strconv.Atoi(parts[0])
	if err != nil {
		return DefaultOTPSeconds
	}
	secs := 0
	if len(parts) == 2 {
		if s, err := strconv.Atoi(parts[1]); err == nil {
			secs = s
		}
	}
	return mins*60 + secs
}

// Countdown is a one-second-resolution display timer for the OTP resend
// window. It is cosmetic only; the server is the arbiter of OTP validity.
type Countdown struct {
	tick time.Duration

	lock      sync.Mutex
	remaining int
	cancel    chan struct{}
}

type CountdownOption func(*Countdown)

// WithTick overrides the one-second resolution (primarily for testing).
func WithTick(d time.Duration) CountdownOption {
	return func(c *Countdown) {
		c.tick = d
	}
}

func NewCountdown(options ...CountdownOption) *Countdown {
	c := &Countdown{tick: time.Second}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Start begins (or restarts) the countdown from the given number of seconds.
func (c *Countdown) Start(seconds int) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.stopLocked()
	c.remaining = seconds
	if seconds <= 0 {
		return
	}

	cancel := make(chan struct{})
	c.cancel = cancel
	go c.run(cancel)
}

func (c *Countdown) run(cancel chan struct{}) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.lock.Lock()
			if c.remaining > 0 {
				c.remaining--
			}
			expired := c.remaining <= 0
			c.lock.Unlock()
			if expired {
				return
			}
		case <-cancel:
			return
		}
	}
}

// Remaining returns the seconds left until resend is re-enabled.
func (c *Countdown) Remaining() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.remaining
}

// Expired reports whether the countdown has reached zero.
func (c *Countdown) Expired() bool {
	return c.Remaining() <= 0
}

// Stop halts the timer and clears the remaining time.
func (c *Countdown) Stop() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.stopLocked()
	c.remaining = 0
}

func (c *Countdown) stopLocked() {
	if c.cancel != nil {
		close(c.cancel)
		c.cancel = nil
	}
}

// FormatTimer renders seconds as "mm:ss" for display.
func FormatTimer(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
