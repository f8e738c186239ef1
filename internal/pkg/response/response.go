package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response format.
type Response struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Data        interface{}         `json:"data,omitempty"`
	Error       string              `json:"error,omitempty"`
	FieldErrors map[string][]string `json:"field_errors,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response and aborts the handler chain.
func Error(c *gin.Context, code int, message string, err error) {
	c.Abort()

	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	c.JSON(code, resp)
}

// FieldError sends an error response carrying per-field validation messages.
func FieldError(c *gin.Context, code int, message string, fields map[string][]string) {
	c.Abort()

	c.JSON(code, Response{
		Success:     false,
		Message:     message,
		FieldErrors: fields,
	})
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 Forbidden response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, nil)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}
