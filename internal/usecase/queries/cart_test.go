//go:build unit

package queries_test

import (
	"context"
	"testing"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"
	"storefront-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCartGateway struct {
	snap  *cart.Snapshot
	calls int
}

func (f *countingCartGateway) FetchCart(_ context.Context, _ string) (*cart.Snapshot, error) {
	f.calls++
	return f.snap, nil
}

func TestGetUsesMirrorWhenWarm(t *testing.T) {
	gateway := &countingCartGateway{snap: builder.NewCartBuilder().Build()}
	mirror := shared.NewCartMirror()
	mirror.Set("c1", gateway.snap)

	q := queries.NewCartQueries(gateway, mirror)

	snap, err := q.Get(context.Background(), "tok", "c1")
	require.NoError(t, err)
	assert.Equal(t, gateway.snap, snap)
	assert.Zero(t, gateway.calls)
}

func TestGetFetchesOnColdMirror(t *testing.T) {
	gateway := &countingCartGateway{snap: builder.NewCartBuilder().Build()}
	mirror := shared.NewCartMirror()

	q := queries.NewCartQueries(gateway, mirror)

	snap, err := q.Get(context.Background(), "tok", "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, gateway.calls)

	mirrored, ok := mirror.Get("c1")
	require.True(t, ok)
	assert.Equal(t, snap, mirrored)
}

func TestRefreshReplacesMirror(t *testing.T) {
	stale := builder.NewCartBuilder().WithEmpty().Build()
	fresh := builder.NewCartBuilder().Build()

	gateway := &countingCartGateway{snap: fresh}
	mirror := shared.NewCartMirror()
	mirror.Set("c1", stale)

	q := queries.NewCartQueries(gateway, mirror)

	snap, err := q.Refresh(context.Background(), "tok", "c1")
	require.NoError(t, err)
	assert.Equal(t, fresh, snap)
	assert.Equal(t, 1, gateway.calls)
}
