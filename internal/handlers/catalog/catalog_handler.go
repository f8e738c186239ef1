package catalog

import (
	"net/http"
	"strconv"

	"sellerhub-service/internal/domain/principal"
	"sellerhub-service/internal/domain/product"
	"sellerhub-service/internal/handlers/respond"
	"sellerhub-service/internal/middleware"
	"sellerhub-service/internal/pkg/response"
	"sellerhub-service/internal/session"
	"sellerhub-service/internal/upstream"

	"github.com/gin-gonic/gin"
)

const defaultLowStockThreshold = 10

// CatalogHandler exposes the product catalog. Reads are open to any
// authenticated role; writes are wired behind seller/admin guards in the
// router.
type CatalogHandler struct {
	products *upstream.ProductsClient
	sessions session.Store
}

func NewCatalogHandler(products *upstream.ProductsClient, sessions session.Store) *CatalogHandler {
	return &CatalogHandler{
		products: products,
		sessions: sessions,
	}
}

// List returns products, optionally narrowed by category or search query.
func (h *CatalogHandler) List(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}
	ctx := c.Request.Context()

	var (
		result []product.Product
		err    error
	)
	switch {
	case c.Query("category") != "":
		result, err = h.products.ByCategory(ctx, p.Token, c.Query("category"))
	case c.Query("search") != "":
		result, err = h.products.Search(ctx, p.Token, c.Query("search"))
	default:
		result, err = h.products.List(ctx, p.Token)
	}
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "products", result)
}

// Get returns one product by id.
func (h *CatalogHandler) Get(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid product ID", err)
		return
	}

	result, err := h.products.Get(c.Request.Context(), p.Token, id)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "product", result)
}

// Create adds a product to the caller's catalog.
func (h *CatalogHandler) Create(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	var req product.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid product", err)
		return
	}

	result, err := h.products.Create(c.Request.Context(), p.Token, &req)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusCreated, "product created", result)
}

// Update applies a partial product update.
func (h *CatalogHandler) Update(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid product ID", err)
		return
	}

	var req product.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid product update", err)
		return
	}

	result, err := h.products.Update(c.Request.Context(), p.Token, id, &req)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "product updated", result)
}

// Delete removes a product.
func (h *CatalogHandler) Delete(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid product ID", err)
		return
	}

	if err := h.products.Delete(c.Request.Context(), p.Token, id); err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "product deleted", nil)
}

// Mine returns the authenticated seller's products.
func (h *CatalogHandler) Mine(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	result, err := h.products.BySeller(c.Request.Context(), p.Token, h.scopeSellerID(c, p))
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "seller products", result)
}

// LowStock returns the seller's products under the stock threshold. The
// filtering happens server-side; the list is surfaced as-is.
func (h *CatalogHandler) LowStock(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	threshold, err := strconv.Atoi(c.DefaultQuery("threshold", strconv.Itoa(defaultLowStockThreshold)))
	if err != nil || threshold < 0 {
		response.ValidationError(c, "invalid threshold", err)
		return
	}

	result, err := h.products.LowStock(c.Request.Context(), p.Token, h.scopeSellerID(c, p), threshold)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "low stock products", result)
}

// scopeSellerID picks the seller to query for: admins may name any seller via
// ?sellerId=, sellers are always scoped to themselves.
func (h *CatalogHandler) scopeSellerID(c *gin.Context, p *principal.Principal) int64 {
	if p.Role == principal.RoleAdmin {
		if id, err := strconv.ParseInt(c.Query("sellerId"), 10, 64); err == nil {
			return id
		}
	}
	return p.SellerID()
}
