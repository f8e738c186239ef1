package session

import (
	"context"

	"sellerhub-service/internal/domain/principal"
)

// Store holds the authenticated principal for each browser session. State is
// last-write-wins: Set replaces, Clear removes, and both notify subscribers.
//
// Get returns (nil, nil) for absent sessions and for malformed persisted
// state; a corrupt record reads the same as "not logged in".
type Store interface {
	Get(ctx context.Context, sid string) (*principal.Principal, error)
	Set(ctx context.Context, sid string, p *principal.Principal) error
	Clear(ctx context.Context, sid string) error

	// IsAuthenticated reports whether the session holds a principal with a
	// non-empty token that has not expired.
	IsAuthenticated(ctx context.Context, sid string) bool

	// HasRole reports whether the session is authenticated with the given role.
	HasRole(ctx context.Context, sid, role string) bool

	Subscribe(buffer int) *Subscription
	Unsubscribe(sub *Subscription)
}

// Change is published to subscribers whenever a session's principal is
// replaced or cleared. Principal is nil for a cleared session.
type Change struct {
	SID       string
	Principal *principal.Principal
}
