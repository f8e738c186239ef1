package middleware

import (
	"errors"
	"net/http"
	"time"

	"sellerhub-service/internal/domain/principal"
	"sellerhub-service/internal/pkg/response"
	"sellerhub-service/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	ctxSessionID = "session_id"
	ctxPrincipal = "principal"
)

type AuthMiddleware struct {
	sessions session.Store
	cookie   string
}

func NewAuthMiddleware(sessions session.Store, cookie string) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		cookie:   cookie,
	}
}

// Auth resolves the session cookie to a principal. The check is evaluated
// fresh on every request; an absent, malformed or expired principal all read
// as unauthenticated.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(m.cookie)
		if err != nil || sid == "" {
			response.Unauthorized(c, "login required")
			return
		}

		p, err := m.sessions.Get(c.Request.Context(), sid)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "failed to load session", err)
			return
		}
		if !p.Valid(time.Now()) {
			response.Unauthorized(c, "session expired, please login again")
			return
		}

		c.Set(ctxSessionID, sid)
		c.Set(ctxPrincipal, p)
		c.Next()
	}
}

// RequireRole requires the principal to hold one of the given roles.
// MUST be used after Auth().
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			response.Forbidden(c, "authentication required")
			return
		}

		for _, role := range roles {
			if p.Role == role {
				c.Next()
				return
			}
		}

		err := errors.New("user does not have required role")
		response.Error(c, http.StatusForbidden, "insufficient permissions", err)
	}
}

// AdminOnly returns middlewares for admin-only routes (Auth + RequireRole).
func (m *AuthMiddleware) AdminOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		m.Auth(),
		m.RequireRole(principal.RoleAdmin),
	}
}

// SellerOnly returns middlewares for seller-only routes (Auth + RequireRole).
func (m *AuthMiddleware) SellerOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		m.Auth(),
		m.RequireRole(principal.RoleSeller),
	}
}

// CurrentPrincipal returns the authenticated principal set by Auth().
func CurrentPrincipal(c *gin.Context) (*principal.Principal, bool) {
	v, exists := c.Get(ctxPrincipal)
	if !exists {
		return nil, false
	}

	p, ok := v.(*principal.Principal)
	return p, ok
}

// SessionID returns the session id set by Auth().
func SessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionID)
	if !exists {
		return "", false
	}

	sid, ok := v.(string)
	return sid, ok
}
