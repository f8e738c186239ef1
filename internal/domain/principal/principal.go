package principal

import "time"

// Roles known to the platform. The upstream API issues tokens for all three;
// the portal only ever creates admin and seller sessions.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
	RoleUser   = "user"
)

// Principal is the authenticated identity held by the session store. It is
// created from a login or refresh response and destroyed on logout; every
// other component reads it, none mutate it.
type Principal struct {
	UserID    int64          `json:"user_id"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	Token     string         `json:"token"`
	ExpiresAt int64          `json:"expires_at"` // epoch milliseconds
	Seller    *SellerProfile `json:"seller,omitempty"`
}

// SellerProfile carries the seller row attached to a seller login.
type SellerProfile struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number"`
	Address        string  `json:"address"`
	CommissionRate float64 `json:"commission_rate"`
}

// Valid reports whether the principal can authenticate requests at the given
// time. An empty token or an elapsed expiry both read as unauthenticated.
func (p *Principal) Valid(now time.Time) bool {
	if p == nil || p.Token == "" {
		return false
	}
	return now.UnixMilli() < p.ExpiresAt
}

// SellerID returns the seller identity to scope seller-view queries by. Falls
// back to the user id when no seller profile was attached at login.
func (p *Principal) SellerID() int64 {
	if p.Seller != nil {
		return p.Seller.ID
	}
	return p.UserID
}
