package sellers

import (
	"net/http"
	"strconv"

	"sellerhub-service/internal/domain/seller"
	"sellerhub-service/internal/handlers/respond"
	"sellerhub-service/internal/middleware"
	"sellerhub-service/internal/pkg/response"
	"sellerhub-service/internal/session"
	"sellerhub-service/internal/upstream"

	"github.com/gin-gonic/gin"
)

type SellersHandler struct {
	sellers  *upstream.SellersClient
	sessions session.Store
}

func NewSellersHandler(sellers *upstream.SellersClient, sessions session.Store) *SellersHandler {
	return &SellersHandler{
		sellers:  sellers,
		sessions: sessions,
	}
}

func (h *SellersHandler) token(c *gin.Context) (string, bool) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return "", false
	}
	return p.Token, true
}

// List returns all sellers, or one page when pagination params are present.
func (h *SellersHandler) List(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, _ := strconv.Atoi(pageStr)
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
		result, err := h.sellers.Paginated(c.Request.Context(), tok, page, perPage)
		if err != nil {
			respond.Fail(c, h.sessions, err)
			return
		}
		response.Success(c, http.StatusOK, "sellers page", result)
		return
	}

	result, err := h.sellers.List(c.Request.Context(), tok)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "sellers", result)
}

// Get returns one seller by id.
func (h *SellersHandler) Get(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid seller ID", err)
		return
	}

	result, err := h.sellers.Get(c.Request.Context(), tok, id)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "seller", result)
}

// Register enrols a new seller.
func (h *SellersHandler) Register(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	var req seller.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid seller registration", err)
		return
	}

	result, err := h.sellers.Register(c.Request.Context(), tok, &req)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusCreated, "seller registered", result)
}

// Update applies a partial seller update.
func (h *SellersHandler) Update(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid seller ID", err)
		return
	}

	var req seller.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid seller update", err)
		return
	}

	result, err := h.sellers.Update(c.Request.Context(), tok, id, &req)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "seller updated", result)
}

// Delete removes a seller.
func (h *SellersHandler) Delete(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid seller ID", err)
		return
	}

	if err := h.sellers.Delete(c.Request.Context(), tok, id); err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "seller deleted", nil)
}

// Top returns the best performing sellers.
func (h *SellersHandler) Top(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if err != nil || limit <= 0 {
		response.ValidationError(c, "invalid limit", err)
		return
	}

	result, err := h.sellers.Top(c.Request.Context(), tok, limit)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "top sellers", result)
}

// Search finds sellers matching a free-text query.
func (h *SellersHandler) Search(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	q := c.Query("q")
	if q == "" {
		response.ValidationError(c, "missing search query", nil)
		return
	}

	result, err := h.sellers.Search(c.Request.Context(), tok, q)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "matching sellers", result)
}

// Statistics returns aggregate seller figures.
func (h *SellersHandler) Statistics(c *gin.Context) {
	tok, ok := h.token(c)
	if !ok {
		return
	}

	result, err := h.sellers.Statistics(c.Request.Context(), tok)
	if err != nil {
		respond.Fail(c, h.sessions, err)
		return
	}
	response.Success(c, http.StatusOK, "seller statistics", result)
}
