package product

import "time"

type Product struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	StockQuantity int        `json:"stock_quantity"`
	Category      string     `json:"category"`
	ImageURL      string     `json:"image_url,omitempty"`
	SellerID      int64      `json:"seller_id"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type CreateRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
	Category      string  `json:"category" binding:"required"`
	ImageURL      string  `json:"image_url"`
}

type UpdateRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty"`
	Category      *string  `json:"category,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}
