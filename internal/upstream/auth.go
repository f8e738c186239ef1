package upstream

import (
	"context"

	"sellerhub-service/internal/domain/principal"
	"sellerhub-service/internal/domain/user"
)

// AuthClient covers the token-issuing /auth endpoints.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// LoginResponse is the upstream answer to a successful login or refresh. The
// token is an opaque bearer string whose payload carries id, exp and role.
type LoginResponse struct {
	Token  string                   `json:"token"`
	User   LoginUser                `json:"user"`
	Seller *principal.SellerProfile `json:"seller,omitempty"`
}

type LoginUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin authenticates against the admin login endpoint.
func (a *AuthClient) AdminLogin(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := a.c.post(ctx, "", "/auth/admin", credentials{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SellerLogin authenticates against the seller login endpoint.
func (a *AuthClient) SellerLogin(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := a.c.post(ctx, "", "/auth/seller", credentials{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh exchanges a still-accepted token for a fresh one.
func (a *AuthClient) Refresh(ctx context.Context, tok string) (*LoginResponse, error) {
	var out LoginResponse
	if err := a.c.post(ctx, tok, "/auth/refresh", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a storefront user account.
func (a *AuthClient) Register(ctx context.Context, req *user.RegisterRequest) (*LoginUser, error) {
	var out LoginUser
	if err := a.c.post(ctx, "", "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
