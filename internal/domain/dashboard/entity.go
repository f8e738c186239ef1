package dashboard

import (
	"sellerhub-service/internal/domain/order"
	"sellerhub-service/internal/domain/product"
	"sellerhub-service/internal/domain/seller"
)

// AdminStats are the platform-wide counters shown on the admin dashboard.
// Counts are list lengths; revenue is the sum over all order totals.
type AdminStats struct {
	Sellers   int     `json:"sellers"`
	Customers int     `json:"customers"`
	Products  int     `json:"products"`
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

type AdminDashboard struct {
	Stats        AdminStats         `json:"stats"`
	RecentOrders []order.Order      `json:"recent_orders"`
	TopSellers   []seller.TopSeller `json:"top_sellers"`
}

type SellerStats struct {
	Products      int     `json:"products"`
	Orders        int     `json:"orders"`
	PendingOrders int     `json:"pending_orders"`
	Revenue       float64 `json:"revenue"`
}

type SellerDashboard struct {
	Stats            SellerStats       `json:"stats"`
	RecentOrders     []order.Order     `json:"recent_orders"`
	LowStockProducts []product.Product `json:"low_stock_products"`
	UnreadMessages   int               `json:"unread_messages"`
}
