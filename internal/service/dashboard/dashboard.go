package dashboard

import (
	"context"

	"sellerhub-service/internal/domain/customer"
	"sellerhub-service/internal/domain/dashboard"
	"sellerhub-service/internal/domain/order"
	"sellerhub-service/internal/domain/product"
	"sellerhub-service/internal/domain/seller"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentOrderCount  = 5
	topSellerCount    = 3
	lowStockThreshold = 10
)

// The aggregator consumes one small interface per resource so the dashboards
// can be assembled from any client (or test fake) that speaks the same reads.
type SellerDirectory interface {
	List(ctx context.Context, token string) ([]seller.Seller, error)
	Top(ctx context.Context, token string, limit int) ([]seller.TopSeller, error)
}

type CustomerDirectory interface {
	List(ctx context.Context, token string) ([]customer.Customer, error)
}

type ProductCatalog interface {
	List(ctx context.Context, token string) ([]product.Product, error)
	BySeller(ctx context.Context, token string, sellerID int64) ([]product.Product, error)
	LowStock(ctx context.Context, token string, sellerID int64, threshold int) ([]product.Product, error)
}

type OrderBook interface {
	List(ctx context.Context, token string) ([]order.Order, error)
	Recent(ctx context.Context, token string, limit int) ([]order.Order, error)
	BySeller(ctx context.Context, token string, sellerID int64) ([]order.Order, error)
	Pending(ctx context.Context, token string, sellerID int64) ([]order.Order, error)
}

type Mailbox interface {
	UnreadCount(ctx context.Context, token string, userID int64) (int, error)
}

// Service fans independent reads out against the resource clients and reduces
// the results into one dashboard. The join is all-or-nothing: the first
// failure cancels the remaining calls and is returned verbatim, leaving the
// caller with zero-value stats. Partial dashboards are deliberately not
// supported.
type Service struct {
	sellers   SellerDirectory
	customers CustomerDirectory
	products  ProductCatalog
	orders    OrderBook
	messages  Mailbox
	logger    *zap.Logger
}

func New(
	sellers SellerDirectory,
	customers CustomerDirectory,
	products ProductCatalog,
	orders OrderBook,
	messages Mailbox,
	logger *zap.Logger,
) *Service {
	return &Service{
		sellers:   sellers,
		customers: customers,
		products:  products,
		orders:    orders,
		messages:  messages,
		logger:    logger,
	}
}

// Admin assembles the platform-wide dashboard.
func (s *Service) Admin(ctx context.Context, token string) (*dashboard.AdminDashboard, error) {
	var (
		sellers    []seller.Seller
		customers  []customer.Customer
		products   []product.Product
		orders     []order.Order
		recent     []order.Order
		topSellers []seller.TopSeller
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sellers, err = s.sellers.List(ctx, token)
		return err
	})
	g.Go(func() (err error) {
		customers, err = s.customers.List(ctx, token)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.products.List(ctx, token)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.orders.List(ctx, token)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.orders.Recent(ctx, token, recentOrderCount)
		return err
	})
	g.Go(func() (err error) {
		topSellers, err = s.sellers.Top(ctx, token, topSellerCount)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("admin dashboard aggregation failed", zap.Error(err))
		return nil, err
	}

	return &dashboard.AdminDashboard{
		Stats: dashboard.AdminStats{
			Sellers:   len(sellers),
			Customers: len(customers),
			Products:  len(products),
			Orders:    len(orders),
			Revenue:   revenue(orders),
		},
		RecentOrders: recent,
		TopSellers:   topSellers,
	}, nil
}

// Seller assembles the dashboard for one seller.
func (s *Service) Seller(ctx context.Context, token string, sellerID int64) (*dashboard.SellerDashboard, error) {
	var (
		products []product.Product
		orders   []order.Order
		pending  []order.Order
		lowStock []product.Product
		unread   int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.products.BySeller(ctx, token, sellerID)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.orders.BySeller(ctx, token, sellerID)
		return err
	})
	g.Go(func() (err error) {
		pending, err = s.orders.Pending(ctx, token, sellerID)
		return err
	})
	g.Go(func() (err error) {
		lowStock, err = s.products.LowStock(ctx, token, sellerID, lowStockThreshold)
		return err
	})
	g.Go(func() (err error) {
		unread, err = s.messages.UnreadCount(ctx, token, sellerID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("seller dashboard aggregation failed",
			zap.Int64("seller_id", sellerID),
			zap.Error(err),
		)
		return nil, err
	}

	return &dashboard.SellerDashboard{
		Stats: dashboard.SellerStats{
			Products:      len(products),
			Orders:        len(orders),
			PendingOrders: len(pending),
			Revenue:       revenue(orders),
		},
		RecentOrders:     firstN(orders, recentOrderCount),
		LowStockProducts: lowStock, // already filtered server-side
		UnreadMessages:   unread,
	}, nil
}

// revenue sums order totals. An order with no amount contributes zero.
func revenue(orders []order.Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += o.TotalAmount
	}
	return sum
}

// firstN keeps the server's ordering and truncates.
func firstN(orders []order.Order, n int) []order.Order {
	if len(orders) <= n {
		return orders
	}
	return orders[:n]
}
