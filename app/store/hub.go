// Package store provides the in-process change-notification hub that
// replaces the document store's live-query subscriptions. A publish is
// a signal that a record set changed, not a diff; subscribers must
// reload a fresh snapshot and recompute derived views from scratch.
package store

import "sync"

// Record set names used across the application.
const (
	SetUsers         = "users"
	SetShifts        = "shifts"
	SetAttendance    = "attendance"
	SetRegistrations = "registrations"
	SetAdjustments   = "adjustments"
	SetSettings      = "settings"
)

// Hub fans out change notifications per record set. Callbacks run on
// the publisher's goroutine and must not block; hand off to a channel
// for anything slow.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func(set string)
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]func(set string))}
}

// Subscribe registers a callback for changes to the named set and
// returns the function that removes the subscription. Unsubscribing
// twice is harmless.
func (h *Hub) Subscribe(set string, fn func(set string)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[set] == nil {
		h.subs[set] = make(map[int]func(set string))
	}
	id := h.next
	h.next++
	h.subs[set][id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[set], id)
	}
}

// Publish notifies every subscriber of the named set.
func (h *Hub) Publish(set string) {
	h.mu.Lock()
	fns := make([]func(set string), 0, len(h.subs[set]))
	for _, fn := range h.subs[set] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(set)
	}
}
