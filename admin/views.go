// Package admin implements the console's resource views: headless state
// holders that fetch from the backend and expose the data the rendering
// layer needs. Each view's network calls live and die with the view.
package admin

import "context"

// TokenSource provides the bearer token for authorized requests, preferring
// a freshly refreshed token over the stored one. Implemented by
// *session.Store.
type TokenSource interface {
	BearerToken(ctx context.Context) string
}

// view carries the shared lifecycle: a context cancelled on Close so that
// in-flight requests cannot outlive their view.
type view struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newView() view {
	ctx, cancel := context.WithCancel(context.Background())
	return view{ctx: ctx, cancel: cancel}
}

// Close tears the view down, aborting any in-flight request.
func (v *view) Close() {
	v.cancel()
}
