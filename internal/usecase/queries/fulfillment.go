package queries

import (
	"context"

	"storefront-checkout/internal/usecase/readmodel"
)

type FulfillmentQueries interface {
	ListAddresses(ctx context.Context, token string) ([]readmodel.Address, error)
	ListStores(ctx context.Context, token string) ([]readmodel.Store, error)
}

type FulfillmentGateway interface {
	ListAddresses(ctx context.Context, token string) ([]readmodel.Address, error)
	ListStores(ctx context.Context, token string) ([]readmodel.Store, error)
}

type fulfillmentQueriesImpl struct {
	gateway FulfillmentGateway
}

func NewFulfillmentQueries(gateway FulfillmentGateway) FulfillmentQueries {
	return &fulfillmentQueriesImpl{gateway: gateway}
}

func (q *fulfillmentQueriesImpl) ListAddresses(ctx context.Context, token string) ([]readmodel.Address, error) {
	return q.gateway.ListAddresses(ctx, token)
}

func (q *fulfillmentQueriesImpl) ListStores(ctx context.Context, token string) ([]readmodel.Store, error) {
	return q.gateway.ListStores(ctx, token)
}
