package admin

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-ecom-client/api"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ProductsAPI is the backend surface the product views need. Implemented by
// *api.Client.
type ProductsAPI interface {
	ListProducts(ctx context.Context) ([]api.Product, error)
	AddProduct(ctx context.Context, bearer string, product api.NewProduct) (*api.Product, error)
	ListCategories(ctx context.Context, bearer string, page, limit int) ([]api.Category, error)
	ListBrands(ctx context.Context, bearer string, page, limit int) ([]api.Brand, error)
}

// ProductsView backs the admin product list. The listing endpoint is public.
type ProductsView struct {
	view
	api ProductsAPI

	lock     sync.Mutex
	loading  bool
	products []api.Product
}

func NewProductsView(apiClient ProductsAPI) *ProductsView {
	return &ProductsView{
		view:    newView(),
		api:     apiClient,
		loading: true,
	}
}

// Load fetches the product collection.
func (v *ProductsView) Load() error {
	defer func() {
		v.lock.Lock()
		v.loading = false
		v.lock.Unlock()
	}()

	fetched, err := v.api.ListProducts(v.ctx)
	if err != nil {
		log.Err(err).Msg("Error fetching products")
		return errors.Wrap(err, "[ProductsView.Load]")
	}

	v.lock.Lock()
	v.products = fetched
	v.lock.Unlock()
	return nil
}

// Loading reports whether the first response has arrived yet.
func (v *ProductsView) Loading() bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.loading
}

// Products returns the fetched collection.
func (v *ProductsView) Products() []api.Product {
	v.lock.Lock()
	defer v.lock.Unlock()
	return append([]api.Product(nil), v.products...)
}
