package storefront_test

import (
	"context"
	"testing"

	"github.com/jrsteele09/go-ecom-client/api"
	"github.com/jrsteele09/go-ecom-client/storefront"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeBannersAPI struct {
	banners []api.Banner
	err     error
}

func (f *fakeBannersAPI) ListBanners(context.Context) ([]api.Banner, error) {
	return f.banners, f.err
}

func TestBannersView(t *testing.T) {
	t.Run("load populates banners", func(t *testing.T) {
		view := storefront.NewBannersView(&fakeBannersAPI{banners: []api.Banner{
			{ID: 1, Title: "Sale", ImageURL: "https://cdn.example.com/sale.png"},
		}})
		defer view.Close()

		require.True(t, view.Loading())
		require.NoError(t, view.Load())
		require.False(t, view.Loading())
		require.Len(t, view.Banners(), 1)
	})

	t.Run("failure leaves an empty collection", func(t *testing.T) {
		view := storefront.NewBannersView(&fakeBannersAPI{err: errors.New("backend unreachable")})
		defer view.Close()

		require.Error(t, view.Load())
		require.False(t, view.Loading())
		require.Empty(t, view.Banners())
	})
}
