package user

import "time"

// User mirrors a row of the registration service's users table, minus the
// password hash.
type User struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser is the validated, hashed record handed to the store for insertion.
type NewUser struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
}

// RegisterRequest is the raw registration payload. Validation happens in the
// registration service so that missing fields surface as per-field errors
// rather than a bind failure.
type RegisterRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Terms     bool   `json:"terms"`
}
