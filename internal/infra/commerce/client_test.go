//go:build unit

package commerce_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/infra/commerce"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *commerce.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.CommerceConfig{
		BaseURL:        srv.URL,
		RequestTimeout: 2 * time.Second,
	}
	return commerce.NewClient(cfg, slog.Default())
}

func TestFetchCart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"statusCode": 200,
			"message": "success",
			"data": {
				"cartId": 101,
				"customerId": 7,
				"totalItems": 3,
				"subTotal": 280000,
				"totalPayable": 250000,
				"items": [
					{"lineItemId": 1, "productUnitId": 501, "productName": "Rice", "quantity": 2, "unitPrice": 125000, "stockQuantity": 10},
					{"lineItemId": 2, "productUnitId": 900, "productName": "Tote", "quantity": 1, "stockQuantity": 1,
					 "promotionApplied": {"promotionId": "P1", "discountType": "percentage", "discountValue": 100}}
				]
			}
		}`))
	})

	snap, err := client.FetchCart(context.Background(), "tok-123")
	require.NoError(t, err)

	assert.Equal(t, int64(101), snap.CartID)
	assert.Equal(t, 3, snap.TotalItems)
	require.Len(t, snap.Items, 2)
	assert.True(t, snap.Items[1].IsGift())

	want := cart.LineItem{
		LineItemID:    1,
		ProductUnitID: 501,
		ProductName:   "Rice",
		Quantity:      2,
		UnitPrice:     125000,
		StockQuantity: 10,
	}
	if diff := cmp.Diff(want, snap.Items[0]); diff != "" {
		t.Errorf("line item mismatch (-want +got):\n%s", diff)
	}
}

func TestSetLineQuantitySendsBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/cart/items/501", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode": 200, "message": "success", "data": {"cartId": 101, "totalItems": 5}}`))
	})

	snap, err := client.SetLineQuantity(context.Background(), "tok", 501, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, snap.TotalItems)
}

func TestRemoveLineRefetchesCart(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode": 200, "message": "success", "data": {"cartId": 101, "totalItems": 0}}`))
	})

	snap, err := client.RemoveLine(context.Background(), "tok", 501)
	require.NoError(t, err)
	assert.True(t, snap.IsEmpty())
	assert.Equal(t, []string{"DELETE /cart/items/501", "GET /cart"}, calls)
}

func TestRejectionSurfacesBackendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode": 400, "message": "Product is out of stock"}`))
	})

	_, err := client.SetLineQuantity(context.Background(), "tok", 501, 5)
	require.Error(t, err)

	msg, ok := commerce.RejectionMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Product is out of stock", msg)
}

func TestRejectionFallbackMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`not json at all`))
	})

	_, err := client.FetchCart(context.Background(), "tok")
	require.Error(t, err)

	msg, ok := commerce.RejectionMessage(err)
	require.True(t, ok)
	assert.Equal(t, "unknown server error", msg)
}

func TestNotFoundKind(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"statusCode": 404, "message": "Order not found"}`))
	})

	_, err := client.FetchOrder(context.Background(), "tok", 42)
	require.Error(t, err)
	assert.True(t, commerce.IsKind(err, commerce.KindNotFound))
}

func TestServerErrorWithoutMessageIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchCart(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, commerce.IsKind(err, commerce.KindUnavailable))
}

func TestUnreachableBackendIsUnavailable(t *testing.T) {
	cfg := config.CommerceConfig{
		BaseURL:        "http://127.0.0.1:1", // nothing listens here
		RequestTimeout: 200 * time.Millisecond,
	}
	client := commerce.NewClient(cfg, slog.Default())

	_, err := client.FetchCart(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, commerce.IsKind(err, commerce.KindUnavailable))
}

func TestFetchOrderStatusNormalization(t *testing.T) {
	tests := []struct {
		name string
		body string
		want order.Status
	}{
		{
			name: "orderStatus only",
			body: `{"orderId": 1, "orderStatus": "PENDING", "customerInfo": {}}`,
			want: order.StatusPending,
		},
		{
			name: "status only",
			body: `{"orderId": 1, "status": "UNPAID", "customerInfo": {}}`,
			want: order.StatusUnpaid,
		},
		{
			name: "orderStatus wins over status",
			body: `{"orderId": 1, "orderStatus": "COMPLETED", "status": "UNPAID", "customerInfo": {}}`,
			want: order.StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"statusCode": 200, "message": "success", "data": ` + tt.body + `}`))
			})

			ord, err := client.FetchOrder(context.Background(), "tok", 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ord.Status)
		})
	}
}

func TestFetchOrderUnknownStatusIsBadResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode": 200, "message": "success", "data": {"orderId": 1, "orderStatus": "EXPLODED", "customerInfo": {}}}`))
	})

	_, err := client.FetchOrder(context.Background(), "tok", 1)
	require.Error(t, err)
	assert.True(t, commerce.IsKind(err, commerce.KindBadResponse))
}

func TestCreateOrderSendsDraftFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode": 201, "message": "success", "data": {"orderId": 9001, "orderCode": "ORD-1", "orderStatus": "UNPAID", "customerInfo": {}}}`))
	})

	addressID := int64(11)
	ord, err := client.CreateOrder(context.Background(), "tok", commandsParams(addressID))
	require.NoError(t, err)
	assert.Equal(t, int64(9001), ord.OrderID)
	assert.Equal(t, order.StatusUnpaid, ord.Status)
}

func commandsParams(addressID int64) commands.CreateOrderParams {
	return commands.CreateOrderParams{
		DeliveryType:  order.HomeDelivery,
		PaymentMethod: order.PaymentOnline,
		AddressID:     &addressID,
		Note:          "leave at door",
	}
}

func TestListStoresFiltersInactive(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode": 200, "message": "success", "data": [
			{"storeId": 1, "storeName": "Central", "isActive": true},
			{"storeId": 2, "storeName": "Closed Branch", "isActive": false}
		]}`))
	})

	stores, err := client.ListStores(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, int64(1), stores[0].StoreID)
}
