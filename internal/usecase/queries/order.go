package queries

import (
	"context"

	"storefront-checkout/internal/domain/order"
)

type OrderQueries interface {
	GetByID(ctx context.Context, token string, orderID int64) (*order.Order, error)
	// ListHistory returns the customer's orders with awaiting-payment ones
	// filtered out; an abandoned payment shows up only once it settles.
	ListHistory(ctx context.Context, token string) ([]*order.Order, error)
}

type OrderViewGateway interface {
	FetchOrder(ctx context.Context, token string, orderID int64) (*order.Order, error)
	ListOrders(ctx context.Context, token string) ([]*order.Order, error)
}

type orderQueriesImpl struct {
	gateway OrderViewGateway
}

func NewOrderQueries(gateway OrderViewGateway) OrderQueries {
	return &orderQueriesImpl{gateway: gateway}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, token string, orderID int64) (*order.Order, error) {
	return q.gateway.FetchOrder(ctx, token, orderID)
}

func (q *orderQueriesImpl) ListHistory(ctx context.Context, token string) ([]*order.Order, error) {
	orders, err := q.gateway.ListOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	visible := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status.AwaitingPayment() {
			continue
		}
		visible = append(visible, o)
	}
	return visible, nil
}
