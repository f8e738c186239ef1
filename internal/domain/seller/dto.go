package seller

// RegistrationRequest is the payload an admin submits to enrol a new seller.
// The upstream API enforces password confirmation and uniqueness.
type RegistrationRequest struct {
	FirstName            string  `json:"first_name" binding:"required"`
	LastName             string  `json:"last_name" binding:"required"`
	Email                string  `json:"email" binding:"required,email"`
	PhoneNumber          string  `json:"phone_number" binding:"required"`
	Address              string  `json:"address" binding:"required"`
	CommissionRate       float64 `json:"commission_rate" binding:"gte=0,lte=100"`
	Password             string  `json:"password" binding:"required,min=8"`
	PasswordConfirmation string  `json:"password_confirmation" binding:"required,eqfield=Password"`
}

// UpdateRequest carries a partial seller update; nil fields are left untouched.
type UpdateRequest struct {
	FirstName      *string  `json:"first_name,omitempty"`
	LastName       *string  `json:"last_name,omitempty"`
	PhoneNumber    *string  `json:"phone_number,omitempty"`
	Address        *string  `json:"address,omitempty"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
}
