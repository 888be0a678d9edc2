package commands

import (
	"context"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/order"
)

// CreateOrderParams carries a validated draft into the gateway. The cart
// reference is implicit: the backend builds the order from the customer's
// current server-side cart.
type CreateOrderParams struct {
	DeliveryType  order.DeliveryType
	PaymentMethod order.PaymentMethod
	AddressID     *int64
	StoreID       *int64
	Note          string
}

// CartGateway is the write side of the remote cart. Every mutation answers
// with the refreshed snapshot so callers never patch totals locally.
type CartGateway interface {
	FetchCart(ctx context.Context, token string) (*cart.Snapshot, error)
	SetLineQuantity(ctx context.Context, token string, productUnitID int64, quantity int) (*cart.Snapshot, error)
	RemoveLine(ctx context.Context, token string, productUnitID int64) (*cart.Snapshot, error)
	ClearCart(ctx context.Context, token string) error
}

type OrderGateway interface {
	CreateOrder(ctx context.Context, token string, params CreateOrderParams) (*order.Order, error)
	FetchOrder(ctx context.Context, token string, orderID int64) (*order.Order, error)
}
