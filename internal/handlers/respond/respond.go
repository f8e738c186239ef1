package respond

import (
	"errors"
	"net/http"

	"sellerhub-service/internal/middleware"
	xerrors "sellerhub-service/internal/pkg/errors"
	"sellerhub-service/internal/pkg/response"
	"sellerhub-service/internal/session"
	"sellerhub-service/internal/upstream"

	"github.com/gin-gonic/gin"
)

// UpstreamError maps a resource client failure onto the portal's response
// envelope. UI code only ever sees this taxonomy, never a raw transport error.
func UpstreamError(c *gin.Context, err error) {
	var ae *upstream.APIError
	if !errors.As(err, &ae) {
		if errors.Is(err, xerrors.ErrSessionExpired) {
			response.Unauthorized(c, "session expired, please login again")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", err)
		return
	}

	switch {
	case ae.Status == 0:
		response.Error(c, http.StatusBadGateway, "platform API unreachable", err)
	case ae.Status == http.StatusUnauthorized:
		response.Unauthorized(c, "session expired, please login again")
	case ae.Status == http.StatusForbidden:
		response.Forbidden(c, "action not permitted for your role")
	case ae.Status == http.StatusNotFound:
		response.NotFound(c, ae.Message)
	case ae.Status == http.StatusBadRequest || ae.Status == http.StatusUnprocessableEntity:
		response.FieldError(c, ae.Status, ae.Message, ae.FieldErrors)
	default:
		response.Error(c, http.StatusBadGateway, ae.Message, nil)
	}
}

// Fail handles an upstream failure: a 401 forces the local session out before
// the response is written, so no further authenticated calls can ride on a
// token the platform has rejected.
func Fail(c *gin.Context, sessions session.Store, err error) {
	if upstream.IsAuthExpired(err) {
		if sid, ok := middleware.SessionID(c); ok {
			_ = sessions.Clear(c.Request.Context(), sid)
		}
	}
	UpstreamError(c, err)
}
