package shared

import (
	"sync"

	"storefront-checkout/internal/domain/cart"
)

// CartMirror is the process-wide cache of each customer's last confirmed
// cart snapshot. The backend stays the source of truth: writers replace the
// whole snapshot from a backend response, never patch it, and settlement
// invalidates it so every reader re-fetches.
type CartMirror struct {
	mu        sync.RWMutex
	snapshots map[string]*cart.Snapshot
}

func NewCartMirror() *CartMirror {
	return &CartMirror{snapshots: make(map[string]*cart.Snapshot)}
}

func (m *CartMirror) Get(customer string) (*cart.Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.snapshots[customer]
	return snap, ok
}

func (m *CartMirror) Set(customer string, snap *cart.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[customer] = snap
}

func (m *CartMirror) Invalidate(customer string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, customer)
}
