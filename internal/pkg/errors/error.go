package xerrors

import "errors"

// ErrSessionExpired marks requests against a session that no longer holds a
// usable principal.
var ErrSessionExpired = errors.New("session expired or invalid")
