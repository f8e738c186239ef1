package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"sellerhub-service/internal/domain/customer"
	"sellerhub-service/internal/domain/order"
	"sellerhub-service/internal/domain/product"
	"sellerhub-service/internal/domain/seller"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSellers struct {
	list []seller.Seller
	top  []seller.TopSeller
	err  error
}

func (f *fakeSellers) List(context.Context, string) ([]seller.Seller, error) {
	return f.list, f.err
}

func (f *fakeSellers) Top(_ context.Context, _ string, limit int) ([]seller.TopSeller, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

type fakeCustomers struct {
	list []customer.Customer
	err  error
}

func (f *fakeCustomers) List(context.Context, string) ([]customer.Customer, error) {
	return f.list, f.err
}

type fakeProducts struct {
	list     []product.Product
	bySeller []product.Product
	lowStock []product.Product
	err      error
}

func (f *fakeProducts) List(context.Context, string) ([]product.Product, error) {
	return f.list, f.err
}

func (f *fakeProducts) BySeller(context.Context, string, int64) ([]product.Product, error) {
	return f.bySeller, f.err
}

func (f *fakeProducts) LowStock(context.Context, string, int64, int) ([]product.Product, error) {
	return f.lowStock, f.err
}

type fakeOrders struct {
	list    []order.Order
	recent  []order.Order
	pending []order.Order

	listErr error
}

func (f *fakeOrders) List(context.Context, string) ([]order.Order, error) {
	return f.list, f.listErr
}

func (f *fakeOrders) Recent(_ context.Context, _ string, limit int) ([]order.Order, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeOrders) BySeller(context.Context, string, int64) ([]order.Order, error) {
	return f.list, f.listErr
}

func (f *fakeOrders) Pending(context.Context, string, int64) ([]order.Order, error) {
	return f.pending, nil
}

type fakeMailbox struct {
	unread int
}

func (f *fakeMailbox) UnreadCount(context.Context, string, int64) (int, error) {
	return f.unread, nil
}

func newService(sellers *fakeSellers, customers *fakeCustomers, products *fakeProducts, orders *fakeOrders, mailbox *fakeMailbox) *Service {
	return New(sellers, customers, products, orders, mailbox, zap.NewNop())
}

func makeOrders(n int) []order.Order {
	out := make([]order.Order, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, order.Order{ID: int64(i + 1), TotalAmount: 10, Status: order.StatusPending})
	}
	return out
}

func TestService_Admin_CountsAndRevenue(t *testing.T) {
	t.Parallel()

	// One order carries no amount; it must contribute zero, not fail.
	orders := []order.Order{
		{ID: 1, TotalAmount: 100},
		{ID: 2},
		{ID: 3, TotalAmount: 50},
	}

	svc := newService(
		&fakeSellers{list: make([]seller.Seller, 4), top: []seller.TopSeller{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}},
		&fakeCustomers{list: make([]customer.Customer, 9)},
		&fakeProducts{list: make([]product.Product, 6)},
		&fakeOrders{list: orders, recent: orders},
		&fakeMailbox{},
	)

	d, err := svc.Admin(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, 4, d.Stats.Sellers)
	assert.Equal(t, 9, d.Stats.Customers)
	assert.Equal(t, 6, d.Stats.Products)
	assert.Equal(t, 3, d.Stats.Orders)
	assert.Equal(t, 150.0, d.Stats.Revenue)
	assert.Len(t, d.TopSellers, 3)
}

func TestService_Admin_FailFast(t *testing.T) {
	t.Parallel()

	ordersErr := errors.New("orders backend down")
	svc := newService(
		&fakeSellers{list: make([]seller.Seller, 2)},
		&fakeCustomers{list: make([]customer.Customer, 2)},
		&fakeProducts{list: make([]product.Product, 2)},
		&fakeOrders{listErr: ordersErr},
		&fakeMailbox{},
	)

	d, err := svc.Admin(context.Background(), "tok")

	// The first failure surfaces verbatim and no partial dashboard is built.
	require.ErrorIs(t, err, ordersErr)
	assert.Nil(t, d)
}

func TestService_Seller_RecentOrdersTruncation(t *testing.T) {
	t.Parallel()

	svc := newService(
		&fakeSellers{},
		&fakeCustomers{},
		&fakeProducts{},
		&fakeOrders{list: makeOrders(8)},
		&fakeMailbox{},
	)

	d, err := svc.Seller(context.Background(), "tok", 7)
	require.NoError(t, err)

	require.Len(t, d.RecentOrders, 5)
	for i, o := range d.RecentOrders {
		assert.Equal(t, int64(i+1), o.ID, "server ordering must be preserved")
	}
	assert.Equal(t, 8, d.Stats.Orders)
	assert.Equal(t, 80.0, d.Stats.Revenue)
}

func TestService_Seller_FewOrdersKeptAsIs(t *testing.T) {
	t.Parallel()

	svc := newService(
		&fakeSellers{},
		&fakeCustomers{},
		&fakeProducts{},
		&fakeOrders{list: makeOrders(2)},
		&fakeMailbox{},
	)

	d, err := svc.Seller(context.Background(), "tok", 7)
	require.NoError(t, err)
	assert.Len(t, d.RecentOrders, 2)
}

func TestService_Seller_LowStockPassthrough(t *testing.T) {
	t.Parallel()

	// The server already applied the threshold; whatever it returns is shown,
	// including items a client-side filter would have dropped.
	lowStock := []product.Product{
		{ID: 1, StockQuantity: 2},
		{ID: 2, StockQuantity: 50},
	}

	svc := newService(
		&fakeSellers{},
		&fakeCustomers{},
		&fakeProducts{lowStock: lowStock},
		&fakeOrders{},
		&fakeMailbox{unread: 4},
	)

	d, err := svc.Seller(context.Background(), "tok", 7)
	require.NoError(t, err)
	assert.Equal(t, lowStock, d.LowStockProducts)
	assert.Equal(t, 4, d.UnreadMessages)
}

func TestService_Seller_FailFast(t *testing.T) {
	t.Parallel()

	prodErr := fmt.Errorf("catalog unavailable")
	svc := newService(
		&fakeSellers{},
		&fakeCustomers{},
		&fakeProducts{err: prodErr},
		&fakeOrders{list: makeOrders(3)},
		&fakeMailbox{},
	)

	d, err := svc.Seller(context.Background(), "tok", 7)
	require.ErrorIs(t, err, prodErr)
	assert.Nil(t, d)
}
