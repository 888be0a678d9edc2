// Package session owns the per-customer checkout state machine: draft
// editing, single-flight order submission, and the payment reconciliation
// loop that watches an order until it leaves UNPAID.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"
)

var (
	ErrSubmissionInFlight = errs.New("submission already in flight")
	ErrCheckoutBusy       = errs.New("checkout is awaiting payment")
	ErrEmptyCart          = errs.New("cart is empty")
	ErrDraftIncomplete    = errs.New("checkout draft is incomplete")
	ErrPaymentInfoMissing = errs.New("payment info missing from order response")
	ErrNotSettled         = errs.New("no settled order to acknowledge")
)

type Phase string

const (
	PhaseReadyToSubmit   Phase = "READY_TO_SUBMIT"
	PhaseSubmitting      Phase = "SUBMITTING"
	PhaseAwaitingPayment Phase = "AWAITING_PAYMENT"
	PhaseSettled         Phase = "SETTLED"
)

// View is the snapshot the presentation layer subscribes to.
type View struct {
	Phase         Phase
	Draft         checkout.Draft
	Submittable   bool
	OrderID       *int64
	OrderCode     string
	Payment       *order.OnlinePaymentInfo
	SettledStatus *order.Status
	LastError     string
}

type Deps struct {
	Orders       commands.OrderGateway
	Carts        queries.CartQueries
	Mirror       *shared.CartMirror
	Clock        clock.Clock
	Logger       *slog.Logger
	PollInterval time.Duration
}

type Session struct {
	deps     Deps
	customer string

	mu         sync.Mutex
	token      string
	draft      checkout.Draft
	phase      Phase
	submitting bool
	lastError  string

	orderID   int64
	orderCode string
	payment   *order.OnlinePaymentInfo
	settled   *order.Status

	// Poller ownership. pollGen invalidates in-flight poll responses the
	// moment the wait is cancelled; stopPoll halts the ticker itself.
	pollGen     uint64
	stopPoll    func()
	pollOrderID int64

	lastActive time.Time
}

func newSession(customer string, deps Deps) *Session {
	return &Session{
		deps:       deps,
		customer:   customer,
		draft:      checkout.NewDraft(),
		phase:      PhaseReadyToSubmit,
		lastActive: deps.Clock.Now(),
	}
}

type UpdateDraftParams struct {
	DeliveryType  *order.DeliveryType
	AddressID     *int64
	StoreID       *int64
	PaymentMethod *order.PaymentMethod
	Note          *string
}

// UpdateDraft applies partial edits to the draft. Edits are rejected while
// a submission or payment wait is running.
func (s *Session) UpdateDraft(params UpdateDraftParams) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReadyToSubmit {
		return s.viewLocked(), ErrCheckoutBusy
	}

	if params.DeliveryType != nil {
		switch *params.DeliveryType {
		case order.HomeDelivery:
			s.draft.Fulfillment.SelectHomeDelivery(params.AddressID)
		case order.PickupAtStore:
			s.draft.Fulfillment.SelectPickup(params.StoreID)
		default:
			return s.viewLocked(), checkout.ErrUnknownDeliveryType
		}
	} else {
		// Target edits without a mode switch apply to the matching mode.
		if params.AddressID != nil {
			s.draft.Fulfillment.AddressID = params.AddressID
		}
		if params.StoreID != nil {
			s.draft.Fulfillment.StoreID = params.StoreID
		}
	}

	if params.PaymentMethod != nil {
		if !params.PaymentMethod.Valid() {
			return s.viewLocked(), checkout.ErrUnknownPayment
		}
		s.draft.PaymentMethod = *params.PaymentMethod
	}
	if params.Note != nil {
		s.draft.Note = *params.Note
	}

	s.lastError = ""
	return s.viewLocked(), nil
}

// Submit runs the orchestration: gate, create the order, then either settle
// immediately (cash, no payment descriptor) or enter the reconciliation
// loop. A failed submission restores ReadyToSubmit with draft and cart
// untouched.
func (s *Session) Submit(ctx context.Context) (View, error) {
	s.mu.Lock()
	if s.submitting {
		v := s.viewLocked()
		s.mu.Unlock()
		return v, ErrSubmissionInFlight
	}
	if s.phase != PhaseReadyToSubmit {
		v := s.viewLocked()
		s.mu.Unlock()
		return v, ErrCheckoutBusy
	}
	if err := s.draft.Validate(); err != nil {
		v := s.viewLocked()
		s.mu.Unlock()
		return v, errs.Mark(err, ErrDraftIncomplete)
	}
	token := s.token
	draft := s.draft
	s.submitting = true
	s.phase = PhaseSubmitting
	s.mu.Unlock()

	snap, err := s.deps.Carts.Get(ctx, token, s.customer)
	if err != nil {
		return s.failSubmit(err)
	}
	if snap.IsEmpty() {
		return s.failSubmit(ErrEmptyCart)
	}

	params := commands.CreateOrderParams{
		DeliveryType:  draft.Fulfillment.Mode,
		PaymentMethod: draft.PaymentMethod,
		Note:          draft.Note,
	}
	switch draft.Fulfillment.Mode {
	case order.HomeDelivery:
		params.AddressID = draft.Fulfillment.AddressID
	case order.PickupAtStore:
		params.StoreID = draft.Fulfillment.StoreID
	}

	ord, err := s.deps.Orders.CreateOrder(ctx, token, params)
	if err != nil {
		return s.failSubmit(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	s.orderID = ord.OrderID
	s.orderCode = ord.OrderCode
	s.lastError = ""

	switch {
	case ord.OnlinePayment.HasPayable():
		s.payment = ord.OnlinePayment
		s.phase = PhaseAwaitingPayment
		s.startPollingLocked(ord.OrderID, token)
	case draft.PaymentMethod.SettlesImmediately():
		s.settleLocked(ord.Status)
	default:
		// Online order without anything to pay with: surface it like any
		// other retryable submission failure.
		s.phase = PhaseReadyToSubmit
		s.orderID = 0
		s.orderCode = ""
		s.lastError = ErrPaymentInfoMissing.Error()
		return s.viewLocked(), ErrPaymentInfoMissing
	}
	return s.viewLocked(), nil
}

func (s *Session) failSubmit(err error) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	s.phase = PhaseReadyToSubmit
	s.lastError = err.Error()
	return s.viewLocked(), err
}

// CancelWait abandons the payment wait: the ticker is stopped before the
// method returns and any in-flight poll response is discarded. The order
// itself stays pending server-side.
func (s *Session) CancelWait() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingPayment {
		return s.viewLocked()
	}
	s.stopPollingLocked()
	s.phase = PhaseReadyToSubmit
	s.payment = nil
	s.orderID = 0
	s.orderCode = ""
	return s.viewLocked()
}

// Acknowledge consumes a settled checkout: it hands back the order to
// navigate to and resets the session for the next purchase.
func (s *Session) Acknowledge() (int64, order.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseSettled || s.settled == nil {
		return 0, "", ErrNotSettled
	}
	orderID := s.orderID
	status := *s.settled

	s.phase = PhaseReadyToSubmit
	s.orderID = 0
	s.orderCode = ""
	s.payment = nil
	s.settled = nil
	s.draft.Note = ""
	return orderID, status, nil
}

// Snapshot includes the derived submittable flag, which needs the mirrored
// cart; a missing mirror entry means "unknown, treat as not submittable"
// rather than forcing a fetch here.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		Phase:     s.phase,
		Draft:     s.draft,
		OrderCode: s.orderCode,
		Payment:   s.payment,
		LastError: s.lastError,
	}
	if s.orderID != 0 {
		id := s.orderID
		v.OrderID = &id
	}
	if s.settled != nil {
		st := *s.settled
		v.SettledStatus = &st
	}
	if s.phase == PhaseReadyToSubmit && !s.submitting && s.draft.Validate() == nil {
		if snap, ok := s.deps.Mirror.Get(s.customer); ok && !snap.IsEmpty() {
			v.Submittable = true
		}
	}
	return v
}

// Close releases the poller on teardown paths (registry sweep, shutdown).
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopPollingLocked()
}

func (s *Session) touch(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.lastActive = s.deps.Clock.Now()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
