package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the uniform error shape every resource client returns. Status 0
// means the upstream never responded (network failure); anything else is the
// HTTP status the upstream answered with.
type APIError struct {
	Status      int                 `json:"status"`
	Message     string              `json:"message"`
	FieldErrors map[string][]string `json:"field_errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream unreachable: %s", e.Message)
	}
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

func asAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsNetwork reports whether the upstream could not be reached at all.
func IsNetwork(err error) bool {
	ae, ok := asAPIError(err)
	return ok && ae.Status == 0
}

// IsAuthExpired reports a 401: the session token is no longer accepted and the
// caller must clear the local session before responding.
func IsAuthExpired(err error) bool {
	ae, ok := asAPIError(err)
	return ok && ae.Status == http.StatusUnauthorized
}

// IsForbidden reports a 403: authenticated but not permitted for this role.
func IsForbidden(err error) bool {
	ae, ok := asAPIError(err)
	return ok && ae.Status == http.StatusForbidden
}

// IsValidation reports a 400 or 422 carrying field-level messages.
func IsValidation(err error) bool {
	ae, ok := asAPIError(err)
	return ok && (ae.Status == http.StatusBadRequest || ae.Status == http.StatusUnprocessableEntity)
}

// IsNotFound reports a 404.
func IsNotFound(err error) bool {
	ae, ok := asAPIError(err)
	return ok && ae.Status == http.StatusNotFound
}

// IsServerError reports any 5xx from the upstream.
func IsServerError(err error) bool {
	ae, ok := asAPIError(err)
	return ok && ae.Status >= http.StatusInternalServerError
}
