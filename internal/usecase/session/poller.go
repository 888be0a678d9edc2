package session

import (
	"context"
	"sync"
	"time"

	"storefront-checkout/internal/domain/order"
)

// startPollingLocked begins the reconciliation loop for orderID. At most
// one ticker runs per order: re-entering the payment wait for the same
// order reuses the live one.
func (s *Session) startPollingLocked(orderID int64, token string) {
	if s.stopPoll != nil {
		if s.pollOrderID == orderID {
			return
		}
		s.stopPollingLocked()
	}

	s.pollGen++
	gen := s.pollGen
	s.pollOrderID = orderID

	stopCh := make(chan struct{})
	var once sync.Once
	s.stopPoll = func() {
		once.Do(func() { close(stopCh) })
	}

	go s.pollLoop(gen, orderID, token, stopCh)
}

// stopPollingLocked halts the ticker and bumps the generation so a poll
// response already in flight can no longer mutate the session.
func (s *Session) stopPollingLocked() {
	if s.stopPoll != nil {
		s.stopPoll()
		s.stopPoll = nil
		s.pollOrderID = 0
	}
	s.pollGen++
}

func (s *Session) pollLoop(gen uint64, orderID int64, token string, stopCh <-chan struct{}) {
	ticker := time.NewTicker(s.deps.PollInterval)
	defer ticker.Stop()

	for {
		// Stop takes priority over a pending tick.
		select {
		case <-stopCh:
			return
		default:
		}

		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.deps.PollInterval*3)
		ord, err := s.deps.Orders.FetchOrder(ctx, token, orderID)
		cancel()

		if err != nil {
			// Transient poll failures look the same as "still pending":
			// log and let the next tick retry.
			s.deps.Logger.Debug("payment poll failed, retrying next tick",
				"order_id", orderID, "error", err.Error())
			continue
		}
		if ord.Status.AwaitingPayment() {
			continue
		}

		s.mu.Lock()
		if s.pollGen != gen {
			// Cancelled while this response was in flight; discard it.
			s.mu.Unlock()
			return
		}
		s.settleLocked(ord.Status)
		s.mu.Unlock()
		return
	}
}

// settleLocked records settlement: polling stops, the cart mirror is
// invalidated (the paid order may have consumed the server-side cart), and
// the final status is exposed for the screen to navigate on.
func (s *Session) settleLocked(status order.Status) {
	s.stopPollingLocked()
	s.deps.Mirror.Invalidate(s.customer)
	s.settled = &status
	s.phase = PhaseSettled
}
