package dashboard

import (
	"net/http"

	"sellerhub-service/internal/handlers/respond"
	"sellerhub-service/internal/middleware"
	"sellerhub-service/internal/pkg/response"
	dashsvc "sellerhub-service/internal/service/dashboard"
	"sellerhub-service/internal/session"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboards *dashsvc.Service
	sessions   session.Store
}

func NewDashboardHandler(dashboards *dashsvc.Service, sessions session.Store) *DashboardHandler {
	return &DashboardHandler{
		dashboards: dashboards,
		sessions:   sessions,
	}
}

// Admin serves the platform-wide dashboard.
func (h *DashboardHandler) Admin(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	d, err := h.dashboards.Admin(c.Request.Context(), p.Token)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "admin dashboard", d)
}

// Seller serves the dashboard scoped to the authenticated seller.
func (h *DashboardHandler) Seller(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	d, err := h.dashboards.Seller(c.Request.Context(), p.Token, p.SellerID())
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "seller dashboard", d)
}
