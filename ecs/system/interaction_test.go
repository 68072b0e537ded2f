package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionPickupHealsParty(t *testing.T) {
	w := ecs.NewWorld(1)
	_, party := newParty(t, w, cp.Vector{})
	stats, err := spawnStats(w)
	require.NoError(t, err)

	ace := ecs.Entity(party.Friend(common.North))
	cal := ecs.Entity(party.Friend(common.South))
	aceHealth, _ := ecs.Get(w, ace, component.HealthComponent.Kind())
	calHealth, _ := ecs.Get(w, cal, component.HealthComponent.Kind())
	aceHealth.Damage(30)
	calHealth.Damage(5)

	aceT, _ := ecs.Get(w, ace, component.TransformComponent.Kind())
	pickup := place(t, w, aceT.Position(), 8)
	require.NoError(t, ecs.Add(w, pickup, component.PickupComponent.Kind(), &component.Pickup{Kind: component.PickupKindHeal, Modification: 15}))

	run(w, tick, input.State{}, NewTriggerSystem(), NewInteractionSystem())

	assert.False(t, ecs.IsAlive(w, pickup))
	assert.Equal(t, aceHealth.Max-15, aceHealth.Current)
	assert.Equal(t, calHealth.Max, calHealth.Current)
	assert.Equal(t, 1, stats.Pickups)
}

func TestInteractionZoneHurts(t *testing.T) {
	w := ecs.NewWorld(1)
	partyEnt, party := newParty(t, w, cp.Vector{})
	ace := ecs.Entity(party.Friend(common.North))
	aceHealth, _ := ecs.Get(w, ace, component.HealthComponent.Kind())
	aceT, _ := ecs.Get(w, ace, component.TransformComponent.Kind())
	inside := aceT.Position()

	zone := place(t, w, cp.Vector{Y: 45}, 10)
	require.NoError(t, ecs.Add(w, zone, component.ZoneComponent.Kind(), &component.Zone{Damage: 12, Force: 80}))

	sched := ecs.NewScheduler(NewTriggerSystem(), NewInteractionSystem())
	sched.Step(w, tick, input.State{})

	assert.Equal(t, aceHealth.Max-12, aceHealth.Current)
	body, _ := ecs.Get(w, partyEnt, component.PhysicsBodyComponent.Kind())
	require.Len(t, body.Pending, 1)
	assert.InDelta(t, -80, body.Pending[0].Y, 1e-9)
	assert.True(t, ecs.Has(w, partyEnt, component.KnockbackComponent.Kind()))

	// staying inside does not hurt again
	sched.Step(w, tick, input.State{})
	sched.Step(w, tick, input.State{})
	assert.Equal(t, aceHealth.Max-12, aceHealth.Current)

	aceT.SetPosition(cp.Vector{X: -200})
	sched.Step(w, tick, input.State{})
	assert.Equal(t, aceHealth.Max-12, aceHealth.Current)

	aceT.SetPosition(inside)
	sched.Step(w, tick, input.State{})
	assert.Equal(t, aceHealth.Max-24, aceHealth.Current)
}

func TestInteractionDoors(t *testing.T) {
	tests := []struct {
		name   string
		locked bool
		in     input.State
		want   cp.Vector
	}{
		{name: "select uses door", in: pressed(input.Select), want: cp.Vector{X: 300, Y: -40}},
		{name: "locked door", locked: true, in: pressed(input.Select), want: cp.Vector{}},
		{name: "no select", in: input.State{}, want: cp.Vector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld(1)
			partyEnt, party := newParty(t, w, cp.Vector{})
			aceT, _ := ecs.Get(w, ecs.Entity(party.Friend(common.North)), component.TransformComponent.Kind())

			door := place(t, w, aceT.Position().Add(cp.Vector{Y: 12}), 4)
			require.NoError(t, ecs.Add(w, door, component.DoorComponent.Kind(), &component.Door{Locked: tt.locked, OtherX: 300, OtherY: -40}))

			run(w, tick, tt.in, NewTriggerSystem(), NewInteractionSystem())

			partyT, _ := ecs.Get(w, partyEnt, component.TransformComponent.Kind())
			assert.Equal(t, tt.want, partyT.Position())
		})
	}
}

func TestInteractionDoorOccupancy(t *testing.T) {
	w := ecs.NewWorld(1)
	partyEnt, party := newParty(t, w, cp.Vector{})
	aceT, _ := ecs.Get(w, ecs.Entity(party.Friend(common.North)), component.TransformComponent.Kind())

	doorEnt := place(t, w, aceT.Position().Add(cp.Vector{Y: 12}), 4)
	door := &component.Door{OtherX: 300}
	require.NoError(t, ecs.Add(w, doorEnt, component.DoorComponent.Kind(), door))

	trigger := NewTriggerSystem()
	run(w, tick, input.State{}, trigger, NewInteractionSystem())
	require.True(t, door.Occupied())

	aceT.SetPosition(cp.Vector{X: -200})
	run(w, tick, pressed(input.Select), trigger, NewInteractionSystem())
	assert.False(t, door.Occupied())

	partyT, _ := ecs.Get(w, partyEnt, component.TransformComponent.Kind())
	assert.Equal(t, cp.Vector{}, partyT.Position())
}

func TestInteractionTriggersSpawner(t *testing.T) {
	w := ecs.NewWorld(1)
	newParty(t, w, cp.Vector{})

	e := place(t, w, cp.Vector{X: 40}, 30)
	sp := &component.Spawner{Prefab: "health_pickup.yaml", Interval: 1, Infinite: true, RequiresTrigger: true}
	require.NoError(t, ecs.Add(w, e, component.SpawnerComponent.Kind(), sp))

	run(w, tick, input.State{}, NewTriggerSystem(), NewInteractionSystem())

	assert.True(t, sp.Triggered)
}

func TestTriggerSystemEnterExit(t *testing.T) {
	w := ecs.NewWorld(1)
	a := place(t, w, cp.Vector{}, 5)
	b := place(t, w, cp.Vector{X: 8}, 5)
	trigger := NewTriggerSystem()

	run(w, tick, input.State{}, trigger)
	enters := w.Events().Take(ecs.EventOverlapEnter)
	require.Len(t, enters, 2)
	assert.True(t, trigger.Overlapping(a, b))

	run(w, tick, input.State{}, trigger)
	assert.Empty(t, w.Events().Take(ecs.EventOverlapEnter))

	ecs.DestroyEntity(w, b)
	run(w, tick, input.State{}, trigger)
	exits := w.Events().Take(ecs.EventOverlapExit)
	require.Len(t, exits, 2)
	assert.False(t, trigger.Overlapping(a, b))
}
