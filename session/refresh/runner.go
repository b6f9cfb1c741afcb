// Package refresh keeps the access token alive with a recurring background
// renewal while the client runs.
package refresh

import (
	"context"
	"time"

	"github.com/jrsteele09/go-ecom-client/session"
	"github.com/rs/zerolog/log"
)

// DefaultInterval is how often the access token is proactively renewed.
const DefaultInterval = 14 * time.Minute

// Refresher is the subset of the session store the runner drives.
type Refresher interface {
	RefreshAuth(ctx context.Context) session.RefreshResult
}

// Runner invokes RefreshAuth immediately at start and then on a fixed
// interval until stopped. Failures are logged, never surfaced, and never
// cancel the loop. Overlapping invocations are allowed: the store's write is
// atomic, so last-write-wins is safe.
type Runner struct {
	store    Refresher
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

type RunnerOption func(*Runner)

// WithInterval overrides the renewal interval (primarily for testing).
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.interval = d
	}
}

func NewRunner(store Refresher, options ...RunnerOption) *Runner {
	r := &Runner{
		store:    store,
		interval: DefaultInterval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Start launches the renewal loop. The loop also ends if ctx is cancelled.
// Call Stop to tear the loop down explicitly.
func (r *Runner) Start(ctx context.Context) {
	go r.loop(ctx)
}

// Stop cancels the loop and waits for it to exit. Safe to call once.
func (r *Runner) Stop() {
	close(r.stop)
	<-r.done
}

func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)

	r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.runOnce(ctx)
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	result := r.store.RefreshAuth(ctx)
	switch result.Outcome {
	case session.Refreshed:
		event := log.Debug().Str("component", "refresh")
		if expiry, err := session.TokenExpiry(result.AccessToken); err == nil {
			event = event.Time("expires_at", expiry)
		}
		event.Msg("Access token renewed")
	case session.RefreshFailed:
		log.Warn().Str("component", "refresh").Err(result.Err).Msg("Scheduled token renewal failed")
	case session.RefreshNoOp:
		// Signed out, nothing to renew.
	}
}
