package auth

import (
	"net/http"
	"time"

	"sellerhub-service/internal/domain/principal"
	"sellerhub-service/internal/domain/user"
	"sellerhub-service/internal/handlers/respond"
	"sellerhub-service/internal/middleware"
	"sellerhub-service/internal/pkg/response"
	authsvc "sellerhub-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	auth         *authsvc.Service
	cookie       string
	cookieSecure bool
}

func NewAuthHandler(auth *authsvc.Service, cookie string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		cookie:       cookie,
		cookieSecure: cookieSecure,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// principalView is the principal as exposed to the browser. The bearer token
// never leaves the portal.
type principalView struct {
	UserID    int64                    `json:"user_id"`
	Email     string                   `json:"email"`
	Role      string                   `json:"role"`
	ExpiresAt int64                    `json:"expires_at"`
	Seller    *principal.SellerProfile `json:"seller,omitempty"`
}

func viewOf(p *principal.Principal) principalView {
	return principalView{
		UserID:    p.UserID,
		Email:     p.Email,
		Role:      p.Role,
		ExpiresAt: p.ExpiresAt,
		Seller:    p.Seller,
	}
}

// AdminLogin authenticates an administrator and starts a session.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, func(sid string, req loginRequest) (*principal.Principal, error) {
		return h.auth.LoginAdmin(c.Request.Context(), sid, req.Email, req.Password)
	})
}

// SellerLogin authenticates a seller and starts a session.
func (h *AuthHandler) SellerLogin(c *gin.Context) {
	h.login(c, func(sid string, req loginRequest) (*principal.Principal, error) {
		return h.auth.LoginSeller(c.Request.Context(), sid, req.Email, req.Password)
	})
}

func (h *AuthHandler) login(c *gin.Context, attempt func(sid string, req loginRequest) (*principal.Principal, error)) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "email and password are required", err)
		return
	}

	// A fresh session id per login; an old cookie never outlives its principal.
	sid := uuid.NewString()

	p, err := attempt(sid, req)
	if err != nil {
		respond.UpstreamError(c, err)
		return
	}

	h.setSessionCookie(c, sid, p)
	response.Success(c, http.StatusOK, "login successful", viewOf(p))
}

// Register creates a storefront user account upstream.
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid registration payload", err)
		return
	}

	created, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		respond.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "registration successful", created)
}

// Refresh exchanges the session's token for a fresh one.
func (h *AuthHandler) Refresh(c *gin.Context) {
	sid, err := c.Cookie(h.cookie)
	if err != nil || sid == "" {
		response.Unauthorized(c, "login required")
		return
	}

	p, err := h.auth.Refresh(c.Request.Context(), sid)
	if err != nil {
		respond.UpstreamError(c, err)
		return
	}

	h.setSessionCookie(c, sid, p)
	response.Success(c, http.StatusOK, "session refreshed", viewOf(p))
}

// Logout destroys the session and drops the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(h.cookie); err == nil && sid != "" {
		if err := h.auth.Logout(c.Request.Context(), sid); err != nil {
			response.Error(c, http.StatusInternalServerError, "failed to end session", err)
			return
		}
	}

	c.SetCookie(h.cookie, "", -1, "/", "", h.cookieSecure, true)
	response.Success(c, http.StatusOK, "logged out", nil)
}

// Me returns the authenticated principal.
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}
	response.Success(c, http.StatusOK, "current user", viewOf(p))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sid string, p *principal.Principal) {
	maxAge := int(time.Until(time.UnixMilli(p.ExpiresAt)).Seconds())
	if maxAge <= 0 {
		maxAge = 0 // session cookie; the store-side expiry still applies
	}
	c.SetCookie(h.cookie, sid, maxAge, "/", "", h.cookieSecure, true)
}
