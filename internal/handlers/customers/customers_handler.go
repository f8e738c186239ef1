package customers

import (
	"net/http"
	"strconv"

	"sellerhub-service/internal/domain/customer"
	"sellerhub-service/internal/handlers/respond"
	"sellerhub-service/internal/middleware"
	"sellerhub-service/internal/pkg/response"
	"sellerhub-service/internal/session"
	"sellerhub-service/internal/upstream"

	"github.com/gin-gonic/gin"
)

// CustomersHandler proxies the customer directory. Admin only.
type CustomersHandler struct {
	customers *upstream.CustomersClient
	sessions  session.Store
}

func NewCustomersHandler(customers *upstream.CustomersClient, sessions session.Store) *CustomersHandler {
	return &CustomersHandler{
		customers: customers,
		sessions:  sessions,
	}
}

func (h *CustomersHandler) token(c *gin.Context) (string, bool) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return "", false
	}
	return p.Token, true
}

func (h *CustomersHandler) List(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	result, err := h.customers.List(c.Request.Context(), tok)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "customers", result)
}

func (h *CustomersHandler) Get(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid customer ID", err)
		return
	}

	result, err := h.customers.Get(c.Request.Context(), tok, id)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "customer", result)
}

func (h *CustomersHandler) Create(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	var req customer.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid customer", err)
		return
	}

	result, err := h.customers.Create(c.Request.Context(), tok, &req)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusCreated, "customer created", result)
}

func (h *CustomersHandler) Update(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid customer ID", err)
		return
	}

	var req customer.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid customer update", err)
		return
	}

	result, err := h.customers.Update(c.Request.Context(), tok, id, &req)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "customer updated", result)
}

func (h *CustomersHandler) Delete(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid customer ID", err)
		return
	}

	if err := h.customers.Delete(c.Request.Context(), tok, id); err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "customer deleted", nil)
}
