package props

import (
	"github.com/automoto/haunt/notify"
	"go.uber.org/zap"
)

const (
	EventDamageApplied  notify.Tag = "damage-applied"
	EventHealthChanged  notify.Tag = "health-changed"
	EventHealthDepleted notify.Tag = "health-depleted"
	EventJustSubscribed notify.Tag = "just-subscribed"
)

type HealthEvent struct {
	Tag     notify.Tag
	Health  *Health
	Amount  int
	Current int
	Max     int
}

type HealthListener interface {
	OnHealth(e HealthEvent) error
}

type Health struct {
	current int
	max     int
	hub     *notify.Hub[HealthListener]
}

// NewHealth starts full. A max below one is raised to one.
func NewHealth(maxHP int, log *zap.Logger) *Health {
	if maxHP < 1 {
		maxHP = 1
	}
	return &Health{current: maxHP, max: maxHP, hub: notify.New[HealthListener]("health", log)}
}

func (h *Health) Current() int   { return h.current }
func (h *Health) Max() int       { return h.max }
func (h *Health) Depleted() bool { return h.current == 0 }

// Subscribe adds l and sends it, and only it, the current values. A
// listener that is already subscribed gets nothing.
func (h *Health) Subscribe(l HealthListener) *notify.Subscription[HealthListener] {
	n := h.hub.Len()
	sub := h.hub.Subscribe(l)
	if sub != nil && h.hub.Len() > n {
		e := h.event(EventJustSubscribed, 0)
		h.hub.EmitTo(e.Tag, l, func(l HealthListener) error { return l.OnHealth(e) })
	}
	return sub
}

func (h *Health) Unsubscribe(l HealthListener) bool {
	return h.hub.Unsubscribe(l)
}

// Damage removes n points. Nothing happens to depleted health or for
// n below one.
func (h *Health) Damage(n int) {
	if n < 1 || h.Depleted() {
		return
	}
	n = min(n, h.current)
	h.current -= n

	h.emit(h.event(EventDamageApplied, n))
	h.emit(h.event(EventHealthChanged, -n))
	if h.Depleted() {
		h.emit(h.event(EventHealthDepleted, 0))
	}
}

// Deplete removes whatever is left.
func (h *Health) Deplete() {
	h.Damage(h.current)
}

// Heal adds n points up to Max.
func (h *Health) Heal(n int) {
	n = min(n, h.max-h.current)
	if n < 1 {
		return
	}
	h.current += n
	h.emit(h.event(EventHealthChanged, n))
}

// Restore refills health.
func (h *Health) Restore() {
	h.Heal(h.max)
}

func (h *Health) event(tag notify.Tag, amount int) HealthEvent {
	return HealthEvent{Tag: tag, Health: h, Amount: amount, Current: h.current, Max: h.max}
}

func (h *Health) emit(e HealthEvent) {
	h.hub.Emit(e.Tag, func(l HealthListener) error { return l.OnHealth(e) })
}
