// Package storefront holds the customer-facing state: the homepage banner
// collection and the shopping cart.
package storefront

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-ecom-client/api"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// BannersAPI is the backend surface the home view needs. Implemented by
// *api.Client.
type BannersAPI interface {
	ListBanners(ctx context.Context) ([]api.Banner, error)
}

// BannersView backs the homepage banner slider. The endpoint is public; an
// empty collection is a valid state.
type BannersView struct {
	api    BannersAPI
	ctx    context.Context
	cancel context.CancelFunc

	lock    sync.Mutex
	loading bool
	banners []api.Banner
}

func NewBannersView(apiClient BannersAPI) *BannersView {
	ctx, cancel := context.WithCancel(context.Background())
	return &BannersView{
		api:     apiClient,
		ctx:     ctx,
		cancel:  cancel,
		loading: true,
	}
}

// Load fetches the banner collection.
func (v *BannersView) Load() error {
	defer func() {
		v.lock.Lock()
		v.loading = false
		v.lock.Unlock()
	}()

	fetched, err := v.api.ListBanners(v.ctx)
	if err != nil {
		log.Err(err).Msg("Error fetching banners")
		return errors.Wrap(err, "[BannersView.Load]")
	}

	v.lock.Lock()
	v.banners = fetched
	v.lock.Unlock()
	return nil
}

// Loading reports whether the first response has arrived yet.
func (v *BannersView) Loading() bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.loading
}

// Banners returns the fetched collection.
func (v *BannersView) Banners() []api.Banner {
	v.lock.Lock()
	defer v.lock.Unlock()
	return append([]api.Banner(nil), v.banners...)
}

// Close tears the view down, aborting any in-flight request.
func (v *BannersView) Close() {
	v.cancel()
}
