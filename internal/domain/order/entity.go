package order

// Order lifecycle states as reported by the upstream API.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusShipped    = "SHIPPED"
	StatusDelivered  = "DELIVERED"
	StatusCancelled  = "CANCELLED"
	StatusReturned   = "RETURNED"
)

type Item struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type Order struct {
	ID                int64   `json:"id"`
	CustomerID        int64   `json:"customer_id"`
	CustomerName      string  `json:"customer_name"`
	SellerID          int64   `json:"seller_id,omitempty"`
	Items             []Item  `json:"items,omitempty"`
	TotalAmount       float64 `json:"total_amount"`
	Status            string  `json:"status"`
	OrderDate         string  `json:"order_date"` // ISO 8601
	ShippingAddress   string  `json:"shipping_address,omitempty"`
	PaymentMethod     string  `json:"payment_method,omitempty"`
	TrackingNumber    string  `json:"tracking_number,omitempty"`
	EstimatedDelivery string  `json:"estimated_delivery,omitempty"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED RETURNED"`
}
