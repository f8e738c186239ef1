package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"sellerhub-service/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zap.NewNop()), srv
}

func TestClient_DecodesListResponse(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Laptop","price":999.5,"stock_quantity":3,"seller_id":7}]`))
	}))

	products, err := NewProductsClient(c).List(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.Product{
		ID:            1,
		Name:          "Laptop",
		Price:         999.5,
		StockQuantity: 3,
		SellerID:      7,
	}, products[0])
}

func TestClient_NormalizesErrorStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 maps to auth expired",
			status: http.StatusUnauthorized,
			body:   `{"message":"token expired"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, IsAuthExpired(err))
				assert.False(t, IsForbidden(err))
			},
		},
		{
			name:   "403 maps to forbidden",
			status: http.StatusForbidden,
			body:   `{"message":"sellers cannot do this"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, IsForbidden(err))
			},
		},
		{
			name:   "404 maps to not found",
			status: http.StatusNotFound,
			body:   `{"message":"no such product"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, IsNotFound(err))
			},
		},
		{
			name:   "422 carries field errors",
			status: http.StatusUnprocessableEntity,
			body:   `{"message":"validation failed","errors":{"price":["must be positive"]}}`,
			check: func(t *testing.T, err error) {
				assert.True(t, IsValidation(err))
				ae, ok := asAPIError(err)
				require.True(t, ok)
				assert.Equal(t, []string{"must be positive"}, ae.FieldErrors["price"])
			},
		},
		{
			name:   "non-json body falls back to status text",
			status: http.StatusBadRequest,
			body:   "<html>nope</html>",
			check: func(t *testing.T, err error) {
				ae, ok := asAPIError(err)
				require.True(t, ok)
				assert.Equal(t, http.StatusText(http.StatusBadRequest), ae.Message)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			// POST so no retry masks the first answer.
			err := c.post(context.Background(), "tok", "/products", struct{}{}, nil)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_NetworkFailureHasStatusZero(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c := NewClient(srv.URL, zap.NewNop())
	err := c.post(context.Background(), "", "/auth/admin", credentials{}, nil)

	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	ae, ok := asAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 0, ae.Status)
}

func TestClient_RetriesIdempotentReadOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := NewOrdersClient(c).List(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_DoesNotRetryReadsOnClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := NewProductsClient(c).Get(context.Background(), "tok", 99)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_NeverRetriesWrites(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := NewProductsClient(c).Create(context.Background(), "tok", &product.CreateRequest{Name: "x"})
	require.Error(t, err)
	assert.True(t, IsServerError(err))
	assert.Equal(t, int32(1), calls.Load())
}
