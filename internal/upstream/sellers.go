package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"sellerhub-service/internal/domain/seller"
)

// SellersClient covers the /sellers collection.
type SellersClient struct {
	c *Client
}

func NewSellersClient(c *Client) *SellersClient {
	return &SellersClient{c: c}
}

func (s *SellersClient) List(ctx context.Context, token string) ([]seller.Seller, error) {
	var out []seller.Seller
	if err := s.c.get(ctx, token, "/sellers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SellersClient) Paginated(ctx context.Context, token string, page, perPage int) (*seller.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var out seller.Page
	if err := s.c.get(ctx, token, "/sellers/paginated", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SellersClient) Get(ctx context.Context, token string, id int64) (*seller.Seller, error) {
	var out seller.Seller
	if err := s.c.get(ctx, token, fmt.Sprintf("/sellers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register enrols a new seller. Admin-only upstream.
func (s *SellersClient) Register(ctx context.Context, token string, req *seller.RegistrationRequest) (*seller.Seller, error) {
	var out seller.Seller
	if err := s.c.post(ctx, token, "/sellers/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SellersClient) Update(ctx context.Context, token string, id int64, req *seller.UpdateRequest) (*seller.Seller, error) {
	var out seller.Seller
	if err := s.c.put(ctx, token, fmt.Sprintf("/sellers/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SellersClient) Delete(ctx context.Context, token string, id int64) error {
	return s.c.delete(ctx, token, fmt.Sprintf("/sellers/%d", id))
}

// Top returns the best performing sellers, server-ranked.
func (s *SellersClient) Top(ctx context.Context, token string, limit int) ([]seller.TopSeller, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var out []seller.TopSeller
	if err := s.c.get(ctx, token, "/sellers/top", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SellersClient) Search(ctx context.Context, token, q string) ([]seller.Seller, error) {
	query := url.Values{}
	query.Set("q", q)

	var out []seller.Seller
	if err := s.c.get(ctx, token, "/sellers/search", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SellersClient) Statistics(ctx context.Context, token string) (*seller.Statistics, error) {
	var out seller.Statistics
	if err := s.c.get(ctx, token, "/sellers/statistics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
