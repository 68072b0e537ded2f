package ecs

import (
	"math/rand/v2"

	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/signal"
	"github.com/milk9111/sqwad/input"
)

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, components and the per-tick resources systems read:
// elapsed time, the input snapshot and the random source.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	owned    map[entityID][]*signal.Subscription
	events   EventQueue

	delta   float64
	elapsed float64
	input   input.State
	rng     *rand.Rand
}

// NewWorld creates an empty world whose random source is seeded with seed.
func NewWorld(seed uint64) *World {
	return &World{
		stores: make(map[component.ComponentID]store),
		owned:  make(map[entityID][]*signal.Subscription),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e, closes the subscriptions it
// owns and invalidates the handle. It reports whether e was alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := e.id()
	for _, s := range w.stores {
		s.remove(id)
	}
	for _, sub := range w.owned[id] {
		sub.Close()
	}
	delete(w.owned, id)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Own ties subscriptions to the lifetime of e: they are closed when e is
// destroyed. Subscriptions handed to a dead entity are closed immediately.
func Own(w *World, e Entity, subs ...*signal.Subscription) {
	if w == nil || !w.entities.isAlive(e) {
		for _, sub := range subs {
			sub.Close()
		}
		return
	}
	w.owned[e.id()] = append(w.owned[e.id()], subs...)
}

// Advance moves the world clock forward and installs the input snapshot for
// the coming tick.
func (w *World) Advance(dt float64, in input.State) {
	if w == nil {
		return
	}
	w.delta = dt
	w.elapsed += dt
	w.input = in
}

// Delta returns the duration of the current tick in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Elapsed returns simulated seconds since the world was created.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

// Input returns the input snapshot for the current tick.
func (w *World) Input() input.State {
	if w == nil {
		return input.State{}
	}
	return w.input
}

// Rand returns the world's deterministic random source.
func (w *World) Rand() *rand.Rand {
	if w == nil {
		return nil
	}
	return w.rng
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
