package orders

import (
	"net/http"
	"strconv"

	"sellerhub-service/internal/domain/order"
	"sellerhub-service/internal/domain/principal"
	"sellerhub-service/internal/handlers/respond"
	"sellerhub-service/internal/middleware"
	"sellerhub-service/internal/pkg/response"
	"sellerhub-service/internal/session"
	"sellerhub-service/internal/upstream"

	"github.com/gin-gonic/gin"
)

const defaultRecentLimit = 5

// OrdersHandler proxies the order book. Admins see every order; sellers are
// scoped to their own.
type OrdersHandler struct {
	orders   *upstream.OrdersClient
	sessions session.Store
}

func NewOrdersHandler(orders *upstream.OrdersClient, sessions session.Store) *OrdersHandler {
	return &OrdersHandler{
		orders:   orders,
		sessions: sessions,
	}
}

// List returns all orders for admins, or the caller's orders for sellers.
func (h *OrdersHandler) List(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}
	ctx := c.Request.Context()

	var (
		result []order.Order
		err    error
	)
	if p.Role == principal.RoleAdmin {
		result, err = h.orders.List(ctx, p.Token)
	} else {
		result, err = h.orders.BySeller(ctx, p.Token, p.SellerID())
	}
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "orders", result)
}

// Recent returns the newest orders. Admin only; sellers get their recent
// slice through the dashboard.
func (h *OrdersHandler) Recent(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecentLimit)))
	if err != nil || limit <= 0 {
		response.ValidationError(c, "invalid limit", err)
		return
	}

	result, err := h.orders.Recent(c.Request.Context(), p.Token, limit)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "recent orders", result)
}

// Pending returns the caller's orders awaiting fulfilment.
func (h *OrdersHandler) Pending(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	result, err := h.orders.Pending(c.Request.Context(), p.Token, p.SellerID())
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "pending orders", result)
}

// UpdateStatus moves an order to a new status.
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid order ID", err)
		return
	}

	var req order.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid status", err)
		return
	}

	result, err := h.orders.UpdateStatus(c.Request.Context(), p.Token, id, req.Status)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "order status updated", result)
}
