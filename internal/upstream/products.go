package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"sellerhub-service/internal/domain/product"
)

// ProductsClient covers the /products collection.
type ProductsClient struct {
	c *Client
}

func NewProductsClient(c *Client) *ProductsClient {
	return &ProductsClient{c: c}
}

func (p *ProductsClient) List(ctx context.Context, token string) ([]product.Product, error) {
	var out []product.Product
	if err := p.c.get(ctx, token, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductsClient) Get(ctx context.Context, token string, id int64) (*product.Product, error) {
	var out product.Product
	if err := p.c.get(ctx, token, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProductsClient) Create(ctx context.Context, token string, req *product.CreateRequest) (*product.Product, error) {
	var out product.Product
	if err := p.c.post(ctx, token, "/products", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProductsClient) Update(ctx context.Context, token string, id int64, req *product.UpdateRequest) (*product.Product, error) {
	var out product.Product
	if err := p.c.put(ctx, token, fmt.Sprintf("/products/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProductsClient) Delete(ctx context.Context, token string, id int64) error {
	return p.c.delete(ctx, token, fmt.Sprintf("/products/%d", id))
}

func (p *ProductsClient) BySeller(ctx context.Context, token string, sellerID int64) ([]product.Product, error) {
	var out []product.Product
	if err := p.c.get(ctx, token, fmt.Sprintf("/products/seller/%d", sellerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LowStock returns the seller's products already filtered server-side by the
// quantity threshold; callers must not re-filter.
func (p *ProductsClient) LowStock(ctx context.Context, token string, sellerID int64, threshold int) ([]product.Product, error) {
	query := url.Values{}
	query.Set("threshold", strconv.Itoa(threshold))

	var out []product.Product
	if err := p.c.get(ctx, token, fmt.Sprintf("/products/low-stock/%d", sellerID), query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductsClient) ByCategory(ctx context.Context, token, category string) ([]product.Product, error) {
	var out []product.Product
	if err := p.c.get(ctx, token, "/products/category/"+url.PathEscape(category), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductsClient) Search(ctx context.Context, token, q string) ([]product.Product, error) {
	query := url.Values{}
	query.Set("query", q)

	var out []product.Product
	if err := p.c.get(ctx, token, "/products/search", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
