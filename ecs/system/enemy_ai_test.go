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

func TestNearestFriend(t *testing.T) {
	w := ecs.NewWorld(1)
	_, ok := NearestFriend(w, cp.Vector{})
	assert.False(t, ok)

	_, party := newParty(t, w, cp.Vector{})

	tests := []struct {
		name string
		pos  cp.Vector
		want common.Direction
	}{
		{name: "east", pos: cp.Vector{X: 100}, want: common.East},
		{name: "south", pos: cp.Vector{Y: -100}, want: common.South},
		{name: "west", pos: cp.Vector{X: -5, Y: 1}, want: common.West},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NearestFriend(w, tt.pos)
			require.True(t, ok)
			assert.Equal(t, ecs.Entity(party.Friend(tt.want)), got)
		})
	}
}

func TestEnemyAISystemTargeting(t *testing.T) {
	w := ecs.NewWorld(1)
	_, party := newParty(t, w, cp.Vector{})
	east := ecs.Entity(party.Friend(common.East))

	e := place(t, w, cp.Vector{X: 100}, 0)
	enemy := &component.Enemy{MoveSpeed: 10, RetargetInterval: 5}
	require.NoError(t, ecs.Add(w, e, component.EnemyComponent.Kind(), enemy))
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())

	run(w, 0.1, input.State{}, NewEnemyAISystem())

	assert.Equal(t, uint64(east), enemy.Target)
	assert.InDelta(t, 4.9, enemy.RetargetTimer, 1e-9)
	assert.InDelta(t, 99, tr.X, 1e-9)

	kill(t, w, east)
	run(w, 0.1, input.State{}, NewEnemyAISystem())

	assert.Zero(t, enemy.Target)
	assert.InDelta(t, 99, tr.X, 1e-9)

	run(w, 5, input.State{}, NewEnemyAISystem())
	run(w, 0.1, input.State{}, NewEnemyAISystem())
	assert.NotZero(t, enemy.Target)
	assert.NotEqual(t, uint64(east), enemy.Target)
}

func TestEnemyAISystemAims(t *testing.T) {
	w := ecs.NewWorld(1)
	newParty(t, w, cp.Vector{})

	e := place(t, w, cp.Vector{X: 100}, 0)
	require.NoError(t, ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{RetargetInterval: 5}))
	attack := component.NewAttack(3)
	attack.Projectile = "enemy_bullet.yaml"
	require.NoError(t, ecs.Add(w, e, component.AttackComponent.Kind(), attack))

	run(w, tick, input.State{}, NewEnemyAISystem())

	assert.True(t, attack.Attacking)
	assert.Less(t, attack.Direction.X, 0.0)
	assert.InDelta(t, 0, attack.Direction.Y, 1e-9)
}

func TestSpawnerSystem(t *testing.T) {
	tests := []struct {
		name      string
		spawner   component.Spawner
		steps     []float64
		wantCount int
		wantAlive bool
	}{
		{
			name:      "catches up",
			spawner:   component.Spawner{Prefab: "health_pickup.yaml", Interval: 1, Remaining: 5, Triggered: true},
			steps:     []float64{2.5},
			wantCount: 2,
			wantAlive: true,
		},
		{
			name:      "runs out",
			spawner:   component.Spawner{Prefab: "health_pickup.yaml", Interval: 1, Remaining: 3, Triggered: true},
			steps:     []float64{2.5, 1},
			wantCount: 3,
			wantAlive: false,
		},
		{
			name:      "infinite",
			spawner:   component.Spawner{Prefab: "health_pickup.yaml", Interval: 1, Infinite: true, Triggered: true},
			steps:     []float64{4, 4},
			wantCount: 8,
			wantAlive: true,
		},
		{
			name:      "waits for trigger",
			spawner:   component.Spawner{Prefab: "health_pickup.yaml", Interval: 1, Infinite: true, RequiresTrigger: true},
			steps:     []float64{10},
			wantCount: 0,
			wantAlive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld(1)
			e := place(t, w, cp.Vector{X: 3, Y: 4}, 0)
			sp := tt.spawner
			require.NoError(t, ecs.Add(w, e, component.SpawnerComponent.Kind(), &sp))

			for _, dt := range tt.steps {
				run(w, dt, input.State{}, NewSpawnerSystem())
			}

			assert.Equal(t, tt.wantCount, ecs.Count(w, component.PickupComponent.Kind()))
			assert.Equal(t, tt.wantAlive, ecs.IsAlive(w, e))
		})
	}
}
