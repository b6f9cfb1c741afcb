package admin

import (
	"context"

	"github.com/jrsteele09/go-ecom-client/api"
	errs "github.com/jrsteele09/go-ecom-client/internal/errors"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ProductForm backs the product-creation screen. Category and brand pickers
// load incrementally: each "load more" appends only unseen ids and a fetch
// returning an empty page stops offering further pages.
type ProductForm struct {
	view
	api    ProductsAPI
	tokens TokenSource

	Categories *Pager[api.Category]
	Brands     *Pager[api.Brand]
}

func NewProductForm(apiClient ProductsAPI, tokens TokenSource, pageLimit int) *ProductForm {
	f := &ProductForm{
		view:   newView(),
		api:    apiClient,
		tokens: tokens,
	}
	f.Categories = NewPager(pageLimit,
		func(c api.Category) int64 { return c.ID },
		func(ctx context.Context, page, limit int) ([]api.Category, error) {
			return apiClient.ListCategories(ctx, tokens.BearerToken(ctx), page, limit)
		})
	f.Brands = NewPager(pageLimit,
		func(b api.Brand) int64 { return b.ID },
		func(ctx context.Context, page, limit int) ([]api.Brand, error) {
			return apiClient.ListBrands(ctx, tokens.BearerToken(ctx), page, limit)
		})
	return f
}

// Load fetches the first page of each picker.
func (f *ProductForm) Load() error {
	if err := f.Categories.LoadMore(f.ctx); err != nil {
		log.Err(err).Msg("Error fetching categories")
		return errors.Wrap(err, "[ProductForm.Load] categories")
	}
	if err := f.Brands.LoadMore(f.ctx); err != nil {
		log.Err(err).Msg("Error fetching brands")
		return errors.Wrap(err, "[ProductForm.Load] brands")
	}
	return nil
}

// LoadMoreCategories fetches the next category page.
func (f *ProductForm) LoadMoreCategories() error {
	return f.Categories.LoadMore(f.ctx)
}

// LoadMoreBrands fetches the next brand page.
func (f *ProductForm) LoadMoreBrands() error {
	return f.Brands.LoadMore(f.ctx)
}

// Submit creates the product. Requires a usable access token.
func (f *ProductForm) Submit(product api.NewProduct) (*api.Product, error) {
	token := f.tokens.BearerToken(f.ctx)
	if token == "" {
		return nil, errors.Wrap(errs.ErrNoSession, "[ProductForm.Submit]")
	}

	created, err := f.api.AddProduct(f.ctx, token, product)
	if err != nil {
		log.Err(err).Msg("Error adding product")
		return nil, errors.Wrap(err, "[ProductForm.Submit]")
	}
	return created, nil
}
