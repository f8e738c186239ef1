package seller

import "time"

type Seller struct {
	ID             int64      `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	PhoneNumber    string     `json:"phone_number"`
	Address        string     `json:"address"`
	CommissionRate float64    `json:"commission_rate"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// TopSeller is a seller row enriched with sales figures, as returned by the
// top-sellers ranking endpoint.
type TopSeller struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int64   `json:"order_count"`
}

// Page is one page of a paginated seller listing.
type Page struct {
	Data        []Seller `json:"data"`
	CurrentPage int      `json:"current_page"`
	Total       int      `json:"total"`
	PerPage     int      `json:"per_page"`
	LastPage    int      `json:"last_page"`
}

type Statistics struct {
	TotalSellers  int64   `json:"total_sellers"`
	ActiveSellers int64   `json:"active_sellers"`
	TotalSales    float64 `json:"total_sales"`
	AverageRate   float64 `json:"average_commission_rate"`
}
