package ecs

// EventType identifies what happened.
type EventType string

const (
	// EventOverlapEnter fires once when two trigger colliders start touching.
	EventOverlapEnter EventType = "overlap_enter"
	// EventOverlapExit fires once when two trigger colliders separate.
	EventOverlapExit EventType = "overlap_exit"
	// EventDied fires when an entity's health pool reaches zero or it dies
	// on contact.
	EventDied EventType = "died"
	// EventPartyDefeated fires when the last party member dies.
	EventPartyDefeated EventType = "party_defeated"
)

// Event is a world event. Entity is the subject; Other is the second party
// of pairwise events such as overlaps.
type Event struct {
	Type   EventType
	Entity Entity
	Other  Entity
	Data   any
}

// EventQueue is a simple FIFO queue cleared at the end of every tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Take removes and returns the events of the given types, preserving order.
func (q *EventQueue) Take(types ...EventType) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if matchesType(evt.Type, types) {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}

// Peek returns the events of the given types without removing them, so
// several systems can react to the same overlap.
func (q *EventQueue) Peek(types ...EventType) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if matchesType(evt.Type, types) {
			out = append(out, evt)
		}
	}
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

func matchesType(t EventType, types []EventType) bool {
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}
