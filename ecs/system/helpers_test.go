package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/entity"
	"github.com/milk9111/sqwad/input"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func newParty(t *testing.T, w *ecs.World, pos cp.Vector) (ecs.Entity, *component.Party) {
	t.Helper()
	e, err := entity.NewParty(w, "party.yaml", pos)
	require.NoError(t, err)
	party, ok := ecs.Get(w, e, component.PartyComponent.Kind())
	require.True(t, ok)
	return e, party
}

// place creates a bare entity at pos with a trigger collider.
func place(t *testing.T, w *ecs.World, pos cp.Vector, radius float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1, ScaleY: 1}))
	if radius > 0 {
		require.NoError(t, ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Radius: radius}))
	}
	return e
}

// run steps the given systems once. Events left over from the previous tick
// are dropped first, as Scheduler.Step does, so tests can still inspect the
// events the tick produced.
func run(w *ecs.World, dt float64, in input.State, systems ...ecs.System) {
	w.Events().Drain()
	w.Advance(dt, in)
	for _, s := range systems {
		s.Update(w)
	}
}

func pressed(b input.Button) input.State {
	var in input.State
	in.SetButton(b, true, true)
	return in
}
