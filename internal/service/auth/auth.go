package auth

import (
	"context"
	"fmt"

	"sellerhub-service/internal/domain/principal"
	"sellerhub-service/internal/domain/user"
	xerrors "sellerhub-service/internal/pkg/errors"
	"sellerhub-service/internal/pkg/token"
	"sellerhub-service/internal/upstream"

	"go.uber.org/zap"
)

// LoginAPI is the slice of the upstream auth client this service consumes.
type LoginAPI interface {
	AdminLogin(ctx context.Context, email, password string) (*upstream.LoginResponse, error)
	SellerLogin(ctx context.Context, email, password string) (*upstream.LoginResponse, error)
	Refresh(ctx context.Context, tok string) (*upstream.LoginResponse, error)
	Register(ctx context.Context, req *user.RegisterRequest) (*upstream.LoginUser, error)
}

// SessionStore is the slice of the session store this service consumes.
type SessionStore interface {
	Get(ctx context.Context, sid string) (*principal.Principal, error)
	Set(ctx context.Context, sid string, p *principal.Principal) error
	Clear(ctx context.Context, sid string) error
}

// Service turns upstream login responses into session principals and owns the
// session lifecycle: login creates, refresh replaces, logout destroys.
type Service struct {
	api      LoginAPI
	sessions SessionStore
	logger   *zap.Logger
}

func New(api LoginAPI, sessions SessionStore, logger *zap.Logger) *Service {
	return &Service{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// LoginAdmin authenticates an administrator and stores the principal under sid.
func (s *Service) LoginAdmin(ctx context.Context, sid, email, password string) (*principal.Principal, error) {
	resp, err := s.api.AdminLogin(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, sid, resp, principal.RoleAdmin)
}

// LoginSeller authenticates a seller and stores the principal under sid.
func (s *Service) LoginSeller(ctx context.Context, sid, email, password string) (*principal.Principal, error) {
	resp, err := s.api.SellerLogin(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, sid, resp, principal.RoleSeller)
}

// Register creates a storefront user account upstream. No session is created;
// the user logs in afterwards.
func (s *Service) Register(ctx context.Context, req *user.RegisterRequest) (*upstream.LoginUser, error) {
	return s.api.Register(ctx, req)
}

// Refresh exchanges the session's token for a fresh one. An upstream 401
// destroys the session before the error is returned.
func (s *Service) Refresh(ctx context.Context, sid string) (*principal.Principal, error) {
	current, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if current == nil || current.Token == "" {
		return nil, xerrors.ErrSessionExpired
	}

	resp, err := s.api.Refresh(ctx, current.Token)
	if err != nil {
		if upstream.IsAuthExpired(err) {
			s.logger.Info("refresh rejected upstream, clearing session",
				zap.String("sid", sid),
			)
			_ = s.sessions.Clear(ctx, sid)
		}
		return nil, err
	}
	return s.establish(ctx, sid, resp, current.Role)
}

// Logout destroys the session.
func (s *Service) Logout(ctx context.Context, sid string) error {
	return s.sessions.Clear(ctx, sid)
}

// Current returns the session's principal, nil when absent.
func (s *Service) Current(ctx context.Context, sid string) (*principal.Principal, error) {
	return s.sessions.Get(ctx, sid)
}

// establish builds a principal from a login response and persists it. Role and
// identity come from the token payload when present, falling back to the user
// record in the response body.
func (s *Service) establish(ctx context.Context, sid string, resp *upstream.LoginResponse, fallbackRole string) (*principal.Principal, error) {
	claims, err := token.Decode(resp.Token)
	if err != nil {
		return nil, fmt.Errorf("upstream issued an undecodable token: %w", err)
	}

	role := claims.Role
	if role == "" {
		role = resp.User.Role
	}
	if role == "" {
		role = fallbackRole
	}

	userID := claims.ID
	if userID == 0 {
		userID = resp.User.ID
	}

	p := &principal.Principal{
		UserID:    userID,
		Email:     resp.User.Email,
		Role:      role,
		Token:     resp.Token,
		ExpiresAt: claims.ExpiresAtMillis(),
		Seller:    resp.Seller,
	}

	if err := s.sessions.Set(ctx, sid, p); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("session established",
		zap.String("sid", sid),
		zap.String("role", p.Role),
		zap.Int64("user_id", p.UserID),
	)
	return p, nil
}
