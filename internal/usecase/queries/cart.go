package queries

import (
	"context"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

type CartQueries interface {
	// Get returns the mirrored snapshot, fetching from the backend when the
	// mirror holds nothing for this customer.
	Get(ctx context.Context, token, customer string) (*cart.Snapshot, error)
	// Refresh always re-fetches and replaces the mirrored snapshot.
	Refresh(ctx context.Context, token, customer string) (*cart.Snapshot, error)
}

type CartViewGateway interface {
	FetchCart(ctx context.Context, token string) (*cart.Snapshot, error)
}

type cartQueriesImpl struct {
	gateway CartViewGateway
	mirror  *shared.CartMirror
	group   singleflight.Group
}

func NewCartQueries(gateway CartViewGateway, mirror *shared.CartMirror) CartQueries {
	return &cartQueriesImpl{gateway: gateway, mirror: mirror}
}

func (q *cartQueriesImpl) Get(ctx context.Context, token, customer string) (*cart.Snapshot, error) {
	if snap, ok := q.mirror.Get(customer); ok {
		return snap, nil
	}
	return q.Refresh(ctx, token, customer)
}

func (q *cartQueriesImpl) Refresh(ctx context.Context, token, customer string) (*cart.Snapshot, error) {
	// Concurrent readers of the same customer share one backend fetch.
	v, err, _ := q.group.Do(customer, func() (any, error) {
		snap, err := q.gateway.FetchCart(ctx, token)
		if err != nil {
			return nil, err
		}
		q.mirror.Set(customer, snap)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*cart.Snapshot), nil
}
