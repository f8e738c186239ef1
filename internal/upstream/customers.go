package upstream

import (
	"context"
	"fmt"

	"sellerhub-service/internal/domain/customer"
)

// CustomersClient covers the /customers collection.
type CustomersClient struct {
	c *Client
}

func NewCustomersClient(c *Client) *CustomersClient {
	return &CustomersClient{c: c}
}

func (cc *CustomersClient) List(ctx context.Context, token string) ([]customer.Customer, error) {
	var out []customer.Customer
	if err := cc.c.get(ctx, token, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CustomersClient) Get(ctx context.Context, token string, id int64) (*customer.Customer, error) {
	var out customer.Customer
	if err := cc.c.get(ctx, token, fmt.Sprintf("/customers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CustomersClient) Create(ctx context.Context, token string, req *customer.CreateRequest) (*customer.Customer, error) {
	var out customer.Customer
	if err := cc.c.post(ctx, token, "/customers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CustomersClient) Update(ctx context.Context, token string, id int64, req *customer.UpdateRequest) (*customer.Customer, error) {
	var out customer.Customer
	if err := cc.c.put(ctx, token, fmt.Sprintf("/customers/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CustomersClient) Delete(ctx context.Context, token string, id int64) error {
	return cc.c.delete(ctx, token, fmt.Sprintf("/customers/%d", id))
}
