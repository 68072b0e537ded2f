package component

import "github.com/milk9111/sqwad/ecs/signal"

// Health is a bounded pool of hit points. Current stays within [0, Max].
//
// Damage and Heal first report the raw amount on TookDamage/TookHealing, then
// apply it. Every application reports the signed amount on Changed. Died is
// emitted once each time the pool drops from a positive value to zero.
type Health struct {
	Current int
	Max     int

	TookDamage  signal.Signal[int]
	TookHealing signal.Signal[int]
	Changed     signal.Signal[int]
	Died        signal.Signal[struct{}]
}

// NewHealth returns a full pool. Max is at least 1.
func NewHealth(max int) *Health {
	if max < 1 {
		max = 1
	}
	return &Health{Current: max, Max: max}
}

func (h *Health) Damage(amount int) {
	if h == nil {
		return
	}
	h.TookDamage.Emit(amount)
	h.modify(-amount)
}

func (h *Health) Heal(amount int) {
	if h == nil {
		return
	}
	h.TookHealing.Emit(amount)
	h.modify(amount)
}

func (h *Health) modify(amount int) {
	was := h.Current
	h.Current += amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
	h.Changed.Emit(amount)
	if was > 0 && h.Current == 0 {
		h.Died.Emit(struct{}{})
	}
}

// Percent returns Current/Max in [0, 1].
func (h *Health) Percent() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

func (h *Health) Dead() bool {
	return h == nil || h.Current <= 0
}

// Release drops every listener when the pool leaves the world.
func (h *Health) Release() {
	if h == nil {
		return
	}
	h.TookDamage.Reset()
	h.TookHealing.Reset()
	h.Changed.Reset()
	h.Died.Reset()
}

var HealthComponent = NewComponent[Health]()
