// Package notify is a small publish/subscribe registry. Emitters own a Hub
// and listeners register themselves; the hub never owns listener lifetime.
package notify

import (
	"fmt"

	"github.com/automoto/haunt/logging"
	"go.uber.org/zap"
)

// Tag names an emitted event, mostly for logs.
type Tag string

// Hub delivers events synchronously to its listeners in subscription order.
//
// A listener that returns an error or panics is logged and skipped; the
// remaining listeners are still called. Listeners may subscribe or
// unsubscribe from inside a delivery. New subscribers are first called on the
// next Emit, removed ones are not called again, even later in the same Emit.
type Hub[L comparable] struct {
	name string
	log  *zap.Logger
	subs []*Subscription[L]
}

// Subscription is the handle returned by Subscribe.
type Subscription[L comparable] struct {
	hub      *Hub[L]
	listener L
	active   bool
}

func New[L comparable](name string, log *zap.Logger) *Hub[L] {
	log = logging.OrNop(log)
	return &Hub[L]{name: name, log: log}
}

// Subscribe appends l. Subscribing a listener twice keeps its original
// position and returns the existing handle. The zero listener is ignored.
func (h *Hub[L]) Subscribe(l L) *Subscription[L] {
	var zero L
	if l == zero {
		return nil
	}
	for _, s := range h.subs {
		if s.listener == l {
			return s
		}
	}
	s := &Subscription[L]{hub: h, listener: l, active: true}
	h.subs = append(h.subs, s)
	return s
}

// Unsubscribe removes l and reports whether it was subscribed.
func (h *Hub[L]) Unsubscribe(l L) bool {
	for i, s := range h.subs {
		if s.listener == l {
			s.active = false
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Cancel removes the subscription. Safe to call more than once.
func (s *Subscription[L]) Cancel() {
	if s == nil || !s.active {
		return
	}
	s.hub.Unsubscribe(s.listener)
}

// Active reports whether the subscription still receives events.
func (s *Subscription[L]) Active() bool {
	return s != nil && s.active
}

func (h *Hub[L]) Len() int {
	return len(h.subs)
}

// Emit calls deliver once per listener and returns how many deliveries failed.
func (h *Hub[L]) Emit(tag Tag, deliver func(L) error) int {
	if len(h.subs) == 0 {
		return 0
	}
	snapshot := make([]*Subscription[L], len(h.subs))
	copy(snapshot, h.subs)

	failed := 0
	for i, s := range snapshot {
		if !s.active {
			continue
		}
		if err := safeDeliver(deliver, s.listener); err != nil {
			failed++
			h.log.Warn("listener failed",
				zap.String("hub", h.name),
				zap.String("event", string(tag)),
				zap.Int("listener", i),
				zap.Error(err),
			)
		}
	}
	return failed
}

// EmitTo delivers to l alone, with the same isolation as Emit. l does not
// need to be subscribed.
func (h *Hub[L]) EmitTo(tag Tag, l L, deliver func(L) error) error {
	err := safeDeliver(deliver, l)
	if err != nil {
		h.log.Warn("listener failed",
			zap.String("hub", h.name),
			zap.String("event", string(tag)),
			zap.Error(err),
		)
	}
	return err
}

func safeDeliver[L comparable](deliver func(L) error, l L) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return deliver(l)
}
