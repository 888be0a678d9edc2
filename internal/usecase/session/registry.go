package session

import (
	"sync"
	"time"
)

// Registry hands out one Session per customer. Exactly one session (and
// therefore at most one payment poller) exists per customer at a time.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	deps     Deps
	ttl      time.Duration
}

func NewRegistry(deps Deps, ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		deps:     deps,
		ttl:      ttl,
	}
}

// Acquire returns the customer's session, creating it on first use, and
// records the freshest bearer token for the poller to use.
func (r *Registry) Acquire(customer, token string) *Session {
	r.mu.Lock()
	s, ok := r.sessions[customer]
	if !ok {
		s = newSession(customer, r.deps)
		r.sessions[customer] = s
	}
	r.mu.Unlock()

	s.touch(token)
	return s
}

// Sweep drops sessions idle past the TTL, closing their pollers. Sessions
// still awaiting payment are kept alive regardless of idleness.
func (r *Registry) Sweep() {
	cutoff := r.deps.Clock.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	for customer, s := range r.sessions {
		if s.Snapshot().Phase == PhaseAwaitingPayment {
			continue
		}
		if s.idleSince().Before(cutoff) {
			s.Close()
			delete(r.sessions, customer)
		}
	}
}

// CloseAll tears down every session; used on shutdown so no poller
// outlives the process lifecycle.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for customer, s := range r.sessions {
		s.Close()
		delete(r.sessions, customer)
	}
}
