package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"sellerhub-service/internal/domain/order"
)

// OrdersClient covers the /orders collection.
type OrdersClient struct {
	c *Client
}

func NewOrdersClient(c *Client) *OrdersClient {
	return &OrdersClient{c: c}
}

func (o *OrdersClient) List(ctx context.Context, token string) ([]order.Order, error) {
	var out []order.Order
	if err := o.c.get(ctx, token, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recent returns the newest orders, server-ordered.
func (o *OrdersClient) Recent(ctx context.Context, token string, limit int) ([]order.Order, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var out []order.Order
	if err := o.c.get(ctx, token, "/orders/recent", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *OrdersClient) BySeller(ctx context.Context, token string, sellerID int64) ([]order.Order, error) {
	query := url.Values{}
	query.Set("sellerId", strconv.FormatInt(sellerID, 10))

	var out []order.Order
	if err := o.c.get(ctx, token, "/orders", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *OrdersClient) Pending(ctx context.Context, token string, sellerID int64) ([]order.Order, error) {
	query := url.Values{}
	query.Set("sellerId", strconv.FormatInt(sellerID, 10))

	var out []order.Order
	if err := o.c.get(ctx, token, "/orders/pending", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *OrdersClient) UpdateStatus(ctx context.Context, token string, id int64, status string) (*order.Order, error) {
	var out order.Order
	body := order.StatusUpdateRequest{Status: status}
	if err := o.c.patch(ctx, token, fmt.Sprintf("/orders/%d/status", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
