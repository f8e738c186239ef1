package register

import (
	"errors"
	"net/http"

	"sellerhub-service/internal/domain/user"
	"sellerhub-service/internal/pkg/response"
	"sellerhub-service/internal/service/register"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler serves the standalone account-registration API.
type RegisterHandler struct {
	svc    *register.Service
	logger *zap.Logger
}

func NewRegisterHandler(svc *register.Service, logger *zap.Logger) *RegisterHandler {
	return &RegisterHandler{svc: svc, logger: logger}
}

// Register handles POST /api/register.
func (h *RegisterHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid registration payload", err)
		return
	}

	created, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		var verr *register.ValidationError
		if errors.As(err, &verr) {
			fields := make(map[string][]string, len(verr.Fields))
			for name, msg := range verr.Fields {
				fields[name] = []string{msg}
			}
			response.FieldError(c, http.StatusBadRequest, verr.Message, fields)
			return
		}
		h.logger.Error("registration failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "registration failed, please try again later", nil)
		return
	}

	response.Success(c, http.StatusCreated, "registration successful", created)
}

// Health handles GET /api/health.
func (h *RegisterHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "ok", nil)
}
