//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"
	"storefront-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken    = "tok-abc"
	testCustomer = "customer-7"
)

// fakeCartGateway records calls and plays back canned snapshots.
type fakeCartGateway struct {
	snap *cart.Snapshot
	err  error

	setCalls    []int
	removeCalls []int64
	fetchCalls  int
	clearCalls  int
}

func (f *fakeCartGateway) FetchCart(_ context.Context, _ string) (*cart.Snapshot, error) {
	f.fetchCalls++
	return f.snap, f.err
}

func (f *fakeCartGateway) SetLineQuantity(_ context.Context, _ string, productUnitID int64, quantity int) (*cart.Snapshot, error) {
	f.setCalls = append(f.setCalls, quantity)
	if f.err != nil {
		return nil, f.err
	}
	refreshed := builder.NewCartBuilder().WithQuantity(productUnitID, quantity).Build()
	return refreshed, nil
}

func (f *fakeCartGateway) RemoveLine(_ context.Context, _ string, productUnitID int64) (*cart.Snapshot, error) {
	f.removeCalls = append(f.removeCalls, productUnitID)
	if f.err != nil {
		return nil, f.err
	}
	return builder.NewCartBuilder().WithEmpty().Build(), nil
}

func (f *fakeCartGateway) ClearCart(_ context.Context, _ string) error {
	f.clearCalls++
	return f.err
}

type cartFixture struct {
	gateway *fakeCartGateway
	mirror  *shared.CartMirror
	uc      commands.CartCommands
}

func newCartFixture(snap *cart.Snapshot) *cartFixture {
	gateway := &fakeCartGateway{snap: snap}
	mirror := shared.NewCartMirror()
	mirror.Set(testCustomer, snap)
	cartQueries := queries.NewCartQueries(gateway, mirror)
	uc := commands.NewCartCommands(gateway, mirror, cartQueries, slog.Default())
	return &cartFixture{gateway: gateway, mirror: mirror, uc: uc}
}

func TestSetQuantityClampsToStock(t *testing.T) {
	// Line 501: quantity 2, stock 10.
	f := newCartFixture(builder.NewCartBuilder().Build())

	snap, err := f.uc.SetQuantity(context.Background(), testToken, testCustomer, 501, 25)
	require.NoError(t, err)

	require.Equal(t, []int{10}, f.gateway.setCalls)
	line, ok := snap.Line(501)
	require.True(t, ok)
	assert.Equal(t, 10, line.Quantity)

	// Mirror now holds the refreshed snapshot.
	mirrored, ok := f.mirror.Get(testCustomer)
	require.True(t, ok)
	assert.Equal(t, snap, mirrored)
}

func TestSetQuantityNoOpSkipsNetwork(t *testing.T) {
	f := newCartFixture(builder.NewCartBuilder().Build())

	// Requesting the current quantity changes nothing.
	snap, err := f.uc.SetQuantity(context.Background(), testToken, testCustomer, 501, 2)
	assert.ErrorIs(t, err, commands.ErrQuantityLimit)
	assert.NotNil(t, snap)
	assert.Empty(t, f.gateway.setCalls)
	assert.Zero(t, f.gateway.fetchCalls)
}

func TestSetQuantityAtStockCeilingIsNoOp(t *testing.T) {
	f := newCartFixture(builder.NewCartBuilder().WithQuantity(501, 10).Build())

	// Already at stock; an increment clamps back to 10 and goes nowhere.
	_, err := f.uc.SetQuantity(context.Background(), testToken, testCustomer, 501, 11)
	assert.ErrorIs(t, err, commands.ErrQuantityLimit)
	assert.Empty(t, f.gateway.setCalls)
}

func TestSetQuantityToZeroBecomesRemoval(t *testing.T) {
	f := newCartFixture(builder.NewCartBuilder().Build())

	snap, err := f.uc.SetQuantity(context.Background(), testToken, testCustomer, 501, 0)
	require.NoError(t, err)

	assert.Empty(t, f.gateway.setCalls)
	assert.Equal(t, []int64{501}, f.gateway.removeCalls)
	assert.True(t, snap.IsEmpty())
}

func TestSetQuantityGiftLineRejected(t *testing.T) {
	f := newCartFixture(builder.NewCartBuilder().WithGiftLine(900).Build())

	_, err := f.uc.SetQuantity(context.Background(), testToken, testCustomer, 900, 3)
	assert.ErrorIs(t, err, commands.ErrGiftLineImmutable)
	assert.Empty(t, f.gateway.setCalls)
	assert.Empty(t, f.gateway.removeCalls)
}

func TestSetQuantityUnknownLine(t *testing.T) {
	f := newCartFixture(builder.NewCartBuilder().Build())

	_, err := f.uc.SetQuantity(context.Background(), testToken, testCustomer, 424242, 1)
	assert.ErrorIs(t, err, commands.ErrLineNotFound)
}

func TestSetQuantityGatewayErrorKeepsMirror(t *testing.T) {
	original := builder.NewCartBuilder().Build()
	f := newCartFixture(original)
	f.gateway.err = errs.New("backend down")

	_, err := f.uc.SetQuantity(context.Background(), testToken, testCustomer, 501, 5)
	require.Error(t, err)

	mirrored, ok := f.mirror.Get(testCustomer)
	require.True(t, ok)
	assert.Equal(t, original, mirrored)
}

func TestRemoveGiftLineRejected(t *testing.T) {
	f := newCartFixture(builder.NewCartBuilder().WithGiftLine(900).Build())

	_, err := f.uc.Remove(context.Background(), testToken, testCustomer, 900)
	assert.ErrorIs(t, err, commands.ErrGiftLineImmutable)
	assert.Empty(t, f.gateway.removeCalls)
}

func TestClearInvalidatesMirror(t *testing.T) {
	f := newCartFixture(builder.NewCartBuilder().WithGiftLine(900).Build())

	err := f.uc.Clear(context.Background(), testToken, testCustomer)
	require.NoError(t, err)

	assert.Equal(t, 1, f.gateway.clearCalls)
	_, ok := f.mirror.Get(testCustomer)
	assert.False(t, ok)
}
