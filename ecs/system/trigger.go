package system

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
)

type overlapPair [2]ecs.Entity

func makePair(a, b ecs.Entity) overlapPair {
	if b < a {
		a, b = b, a
	}
	return overlapPair{a, b}
}

// TriggerSystem detects circle collider overlaps and queues one enter
// event when a pair starts touching and one exit event when it stops or
// either side is destroyed. Each transition is queued in both directions
// so handlers only need to look at the Entity field.
type TriggerSystem struct {
	active map[overlapPair]struct{}
}

func NewTriggerSystem() *TriggerSystem {
	return &TriggerSystem{active: make(map[overlapPair]struct{})}
}

type trigger struct {
	e      ecs.Entity
	centre cp.Vector
	radius float64
}

func (s *TriggerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if s.active == nil {
		s.active = make(map[overlapPair]struct{})
	}

	var triggers []trigger
	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Collider, t *component.Transform) {
		scale := t.ScaleX
		if scale <= 0 {
			scale = 1
		}
		triggers = append(triggers, trigger{
			e:      e,
			centre: cp.Vector{X: t.X + c.OffsetX, Y: t.Y + c.OffsetY},
			radius: c.Radius * scale,
		})
	})

	current := make(map[overlapPair]struct{}, len(s.active))
	events := w.Events()
	for i := 0; i < len(triggers); i++ {
		for j := i + 1; j < len(triggers); j++ {
			a, b := triggers[i], triggers[j]
			if a.centre.Distance(b.centre) > a.radius+b.radius {
				continue
			}
			pair := makePair(a.e, b.e)
			current[pair] = struct{}{}
			if _, ok := s.active[pair]; ok {
				continue
			}
			events.Push(ecs.Event{Type: ecs.EventOverlapEnter, Entity: a.e, Other: b.e})
			events.Push(ecs.Event{Type: ecs.EventOverlapEnter, Entity: b.e, Other: a.e})
		}
	}

	var ended []overlapPair
	for pair := range s.active {
		if _, ok := current[pair]; !ok {
			ended = append(ended, pair)
		}
	}
	sort.Slice(ended, func(i, j int) bool {
		if ended[i][0] != ended[j][0] {
			return ended[i][0] < ended[j][0]
		}
		return ended[i][1] < ended[j][1]
	})
	for _, pair := range ended {
		events.Push(ecs.Event{Type: ecs.EventOverlapExit, Entity: pair[0], Other: pair[1]})
		events.Push(ecs.Event{Type: ecs.EventOverlapExit, Entity: pair[1], Other: pair[0]})
	}

	s.active = current
}

// Overlapping reports whether a and b were touching at the last update.
func (s *TriggerSystem) Overlapping(a, b ecs.Entity) bool {
	if s == nil {
		return false
	}
	_, ok := s.active[makePair(a, b)]
	return ok
}
