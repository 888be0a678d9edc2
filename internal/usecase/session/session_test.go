//go:build unit

package session_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/session"
	"storefront-checkout/internal/usecase/shared"
	"storefront-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken    = "tok-abc"
	testCustomer = "customer-7"
	pollInterval = 10 * time.Millisecond
)

// scriptedOrderGateway plays back a create response and a sequence of poll
// statuses; the last scripted status repeats once the script is exhausted.
type scriptedOrderGateway struct {
	mu           sync.Mutex
	createOrder  *order.Order
	createErr    error
	pollStatuses []order.Status
	pollCount    int

	// When set, FetchOrder blocks until release is closed.
	block   chan struct{}
	release chan struct{}
}

func (g *scriptedOrderGateway) CreateOrder(_ context.Context, _ string, _ commands.CreateOrderParams) (*order.Order, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.createOrder, nil
}

func (g *scriptedOrderGateway) FetchOrder(_ context.Context, _ string, orderID int64) (*order.Order, error) {
	g.mu.Lock()
	idx := g.pollCount
	g.pollCount++
	if idx >= len(g.pollStatuses) {
		idx = len(g.pollStatuses) - 1
	}
	status := g.pollStatuses[idx]
	block := g.block
	release := g.release
	g.mu.Unlock()

	if block != nil {
		block <- struct{}{}
		<-release
	}
	return builder.NewOrderBuilder().WithID(orderID).WithStatus(status).Build(), nil
}

func (g *scriptedOrderGateway) polls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pollCount
}

type fakeCartQueries struct {
	snap *cart.Snapshot
	err  error
}

func (f *fakeCartQueries) Get(_ context.Context, _, _ string) (*cart.Snapshot, error) {
	return f.snap, f.err
}

func (f *fakeCartQueries) Refresh(_ context.Context, _, _ string) (*cart.Snapshot, error) {
	return f.snap, f.err
}

type fixture struct {
	gateway *scriptedOrderGateway
	carts   *fakeCartQueries
	mirror  *shared.CartMirror
	clock   *clock.MockClock
	reg     *session.Registry
}

func newFixture() *fixture {
	gateway := &scriptedOrderGateway{
		createOrder:  builder.NewOrderBuilder().Build(),
		pollStatuses: []order.Status{order.StatusUnpaid},
	}
	snap := builder.NewCartBuilder().Build()
	mirror := shared.NewCartMirror()
	mirror.Set(testCustomer, snap)
	mock := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	deps := session.Deps{
		Orders:       gateway,
		Carts:        &fakeCartQueries{snap: snap},
		Mirror:       mirror,
		Clock:        mock,
		Logger:       slog.Default(),
		PollInterval: pollInterval,
	}
	return &fixture{
		gateway: gateway,
		carts:   deps.Carts.(*fakeCartQueries),
		mirror:  mirror,
		clock:   mock,
		reg:     session.NewRegistry(deps, time.Hour),
	}
}

func (f *fixture) readySession(t *testing.T) *session.Session {
	t.Helper()
	sess := f.reg.Acquire(testCustomer, testToken)
	addressID := int64(11)
	_, err := sess.UpdateDraft(session.UpdateDraftParams{AddressID: &addressID})
	require.NoError(t, err)
	return sess
}

func paymentMethodPtr(m order.PaymentMethod) *order.PaymentMethod { return &m }

func TestSubmitRejectsIncompleteDraft(t *testing.T) {
	f := newFixture()
	sess := f.reg.Acquire(testCustomer, testToken)

	_, err := sess.Submit(context.Background())
	assert.ErrorIs(t, err, session.ErrDraftIncomplete)
	assert.Equal(t, session.PhaseReadyToSubmit, sess.Snapshot().Phase)
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	f := newFixture()
	f.carts.snap = builder.NewCartBuilder().WithEmpty().Build()
	sess := f.readySession(t)

	view, err := sess.Submit(context.Background())
	assert.ErrorIs(t, err, session.ErrEmptyCart)
	assert.Equal(t, session.PhaseReadyToSubmit, view.Phase)
	assert.Equal(t, session.ErrEmptyCart.Error(), view.LastError)
}

func TestSubmitFailurePreservesDraft(t *testing.T) {
	f := newFixture()
	f.gateway.createErr = assert.AnError
	sess := f.readySession(t)

	view, err := sess.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, session.PhaseReadyToSubmit, view.Phase)
	target, ok := view.Draft.Fulfillment.Target()
	require.True(t, ok)
	assert.Equal(t, int64(11), target)

	// A retry is allowed right away.
	f.gateway.createErr = nil
	f.gateway.createOrder = builder.NewOrderBuilder().WithCash().WithStatus(order.StatusPending).Build()
	_, err = sess.UpdateDraft(session.UpdateDraftParams{PaymentMethod: paymentMethodPtr(order.PaymentCash)})
	require.NoError(t, err)
	_, err = sess.Submit(context.Background())
	assert.NoError(t, err)
}

func TestSubmitCashSettlesImmediately(t *testing.T) {
	f := newFixture()
	f.gateway.createOrder = builder.NewOrderBuilder().WithCash().WithStatus(order.StatusPending).Build()
	sess := f.readySession(t)
	_, err := sess.UpdateDraft(session.UpdateDraftParams{PaymentMethod: paymentMethodPtr(order.PaymentCash)})
	require.NoError(t, err)

	view, err := sess.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, session.PhaseSettled, view.Phase)
	require.NotNil(t, view.SettledStatus)
	assert.Equal(t, order.StatusPending, *view.SettledStatus)
	assert.Zero(t, f.gateway.polls())

	// Settlement invalidates the mirrored cart.
	_, ok := f.mirror.Get(testCustomer)
	assert.False(t, ok)

	orderID, status, err := sess.Acknowledge()
	require.NoError(t, err)
	assert.Equal(t, int64(9001), orderID)
	assert.Equal(t, order.StatusPending, status)
	assert.Equal(t, session.PhaseReadyToSubmit, sess.Snapshot().Phase)
}

func TestSubmitOnlineEntersPaymentWait(t *testing.T) {
	f := newFixture()
	f.gateway.pollStatuses = []order.Status{order.StatusUnpaid, order.StatusUnpaid, order.StatusPending}
	sess := f.readySession(t)

	view, err := sess.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.PhaseAwaitingPayment, view.Phase)
	require.NotNil(t, view.Payment)
	assert.NotEmpty(t, view.Payment.PaymentURL)

	require.Eventually(t, func() bool {
		return sess.Snapshot().Phase == session.PhaseSettled
	}, time.Second, pollInterval/2)

	// Two pending answers then a settling one: exactly three polls.
	assert.Equal(t, 3, f.gateway.polls())

	// No further tick once settled.
	time.Sleep(5 * pollInterval)
	assert.Equal(t, 3, f.gateway.polls())

	view = sess.Snapshot()
	require.NotNil(t, view.SettledStatus)
	assert.Equal(t, order.StatusPending, *view.SettledStatus)
}

func TestCancelledOrderAlsoSettles(t *testing.T) {
	f := newFixture()
	f.gateway.pollStatuses = []order.Status{order.StatusCancelled}
	sess := f.readySession(t)

	_, err := sess.Submit(context.Background())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return sess.Snapshot().Phase == session.PhaseSettled
	}, time.Second, pollInterval/2)

	view := sess.Snapshot()
	require.NotNil(t, view.SettledStatus)
	assert.Equal(t, order.StatusCancelled, *view.SettledStatus)
}

func TestSubmitWhileAwaitingPaymentRejected(t *testing.T) {
	f := newFixture()
	sess := f.readySession(t)

	_, err := sess.Submit(context.Background())
	require.NoError(t, err)

	_, err = sess.Submit(context.Background())
	assert.ErrorIs(t, err, session.ErrCheckoutBusy)

	_, err = sess.UpdateDraft(session.UpdateDraftParams{Note: strPtr("late edit")})
	assert.ErrorIs(t, err, session.ErrCheckoutBusy)
}

func TestCancelWaitReturnsToReady(t *testing.T) {
	f := newFixture()
	sess := f.readySession(t)

	_, err := sess.Submit(context.Background())
	require.NoError(t, err)

	view := sess.CancelWait()
	assert.Equal(t, session.PhaseReadyToSubmit, view.Phase)
	assert.Nil(t, view.Payment)
	assert.Nil(t, view.OrderID)

	// One in-flight tick may drain; after that polling is over.
	time.Sleep(3 * pollInterval)
	polled := f.gateway.polls()
	time.Sleep(5 * pollInterval)
	assert.Equal(t, polled, f.gateway.polls())
}

func TestCancelDiscardsInFlightPollResponse(t *testing.T) {
	f := newFixture()
	f.gateway.pollStatuses = []order.Status{order.StatusPending}
	f.gateway.block = make(chan struct{}, 1)
	f.gateway.release = make(chan struct{})
	sess := f.readySession(t)

	_, err := sess.Submit(context.Background())
	require.NoError(t, err)

	// Wait for a poll to be in flight, cancel underneath it, then let the
	// settling response land.
	<-f.gateway.block
	sess.CancelWait()
	close(f.gateway.release)

	time.Sleep(5 * pollInterval)
	view := sess.Snapshot()
	assert.Equal(t, session.PhaseReadyToSubmit, view.Phase)
	assert.Nil(t, view.SettledStatus)
}

func TestSubmitOnlineWithoutPayableFails(t *testing.T) {
	f := newFixture()
	f.gateway.createOrder = builder.NewOrderBuilder().WithoutPayable().Build()
	sess := f.readySession(t)

	view, err := sess.Submit(context.Background())
	assert.ErrorIs(t, err, session.ErrPaymentInfoMissing)
	assert.Equal(t, session.PhaseReadyToSubmit, view.Phase)
	assert.Nil(t, view.OrderID)
}

func TestAcknowledgeRequiresSettlement(t *testing.T) {
	f := newFixture()
	sess := f.reg.Acquire(testCustomer, testToken)

	_, _, err := sess.Acknowledge()
	assert.ErrorIs(t, err, session.ErrNotSettled)
}

func TestSubmittableDerivation(t *testing.T) {
	f := newFixture()
	sess := f.reg.Acquire(testCustomer, testToken)

	// Incomplete draft: not submittable.
	assert.False(t, sess.Snapshot().Submittable)

	addressID := int64(11)
	view, err := sess.UpdateDraft(session.UpdateDraftParams{AddressID: &addressID})
	require.NoError(t, err)
	assert.True(t, view.Submittable)

	// Empty mirror entry means unknown cart: not submittable.
	f.mirror.Invalidate(testCustomer)
	assert.False(t, sess.Snapshot().Submittable)
}

func strPtr(s string) *string { return &s }
