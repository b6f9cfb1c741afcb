package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jrsteele09/go-ecom-client/users"
	"github.com/pkg/errors"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type ProductVariant struct {
	VariantName   string   `json:"variant_name"`
	Price         float64  `json:"price"`
	StockQuantity int      `json:"stock_quantity"`
	OptionValues  []string `json:"option_values"`
}

type Product struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Slug             string           `json:"slug"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"short_description"`
	Price            float64          `json:"price"`
	DiscountPrice    float64          `json:"discount_price"`
	StockQuantity    int              `json:"stock_quantity"`
	Status           string           `json:"status"`
	Category         *Category        `json:"category,omitempty"`
	Brand            *Brand           `json:"brand,omitempty"`
	Options          []ProductOption  `json:"options,omitempty"`
	Variants         []ProductVariant `json:"variants,omitempty"`
}

// NewProduct is the creation payload for POST /product/add.
type NewProduct struct {
	Name             string           `json:"name"`
	Slug             string           `json:"slug"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"short_description"`
	Price            float64          `json:"price"`
	DiscountPrice    float64          `json:"discount_price,omitempty"`
	StockQuantity    int              `json:"stock_quantity"`
	Status           string           `json:"status"`
	CategoryID       int64            `json:"category_id"`
	BrandID          int64            `json:"brand_id"`
	Options          []ProductOption  `json:"options,omitempty"`
	Variants         []ProductVariant `json:"variants,omitempty"`
}

type Banner struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url"`
}

// ListUsers fetches the full user collection. Search and role filtering are
// client-side concerns and are never sent to the server.
func (c *Client) ListUsers(ctx context.Context, bearer string) ([]users.User, error) {
	var resp struct {
		Users []users.User `json:"users"`
	}
	if err := c.getJSON(ctx, "/auth", bearer, &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.ListUsers]")
	}
	return resp.Users, nil
}

// GetUser fetches a single user by its backend identifier.
func (c *Client) GetUser(ctx context.Context, bearer, uid string) (*users.User, error) {
	var resp struct {
		User *users.User `json:"user"`
	}
	if err := c.getJSON(ctx, "/auth/"+url.PathEscape(uid), bearer, &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.GetUser]")
	}
	return resp.User, nil
}

// ListCategories fetches one page of categories. An empty page means the
// collection is exhausted.
func (c *Client) ListCategories(ctx context.Context, bearer string, page, limit int) ([]Category, error) {
	var resp struct {
		Data []Category `json:"data"`
	}
	path := fmt.Sprintf("/category/categories?page=%d&limit=%d", page, limit)
	if err := c.getJSON(ctx, path, bearer, &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.ListCategories]")
	}
	return resp.Data, nil
}

// ListBrands fetches one page of brands.
func (c *Client) ListBrands(ctx context.Context, bearer string, page, limit int) ([]Brand, error) {
	var resp struct {
		Data []Brand `json:"data"`
	}
	path := fmt.Sprintf("/brand?page=%d&limit=%d", page, limit)
	if err := c.getJSON(ctx, path, bearer, &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.ListBrands]")
	}
	return resp.Data, nil
}

// ListProducts fetches the product collection. The listing is public.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var resp struct {
		Data []Product `json:"data"`
	}
	if err := c.getJSON(ctx, "/product", "", &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.ListProducts]")
	}
	return resp.Data, nil
}

// AddProduct creates a product. Requires a bearer access token.
func (c *Client) AddProduct(ctx context.Context, bearer string, product NewProduct) (*Product, error) {
	var resp struct {
		Success bool     `json:"success"`
		Message string   `json:"message"`
		Data    *Product `json:"data"`
	}
	if err := c.postJSON(ctx, "/product/add", bearer, product, &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.AddProduct]")
	}
	return resp.Data, nil
}

// ListBanners fetches the homepage banner collection. The listing is public.
func (c *Client) ListBanners(ctx context.Context) ([]Banner, error) {
	var resp struct {
		Data []Banner `json:"data"`
	}
	if err := c.getJSON(ctx, "/banner", "", &resp); err != nil {
		return nil, errors.Wrap(err, "[Client.ListBanners]")
	}
	return resp.Data, nil
}
