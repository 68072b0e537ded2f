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

func newShooter(t *testing.T, w *ecs.World, attack *component.Attack) ecs.Entity {
	t.Helper()
	e := place(t, w, cp.Vector{}, 0)
	require.NoError(t, ecs.Add(w, e, component.AttackComponent.Kind(), attack))
	require.NoError(t, ecs.Add(w, e, component.FactionComponent.Kind(), &component.Faction{Side: component.SideFriend}))
	return e
}

func TestAttackSystemVolleys(t *testing.T) {
	tests := []struct {
		name   string
		attack func() *component.Attack
		want   int
	}{
		{
			name: "directional",
			attack: func() *component.Attack {
				a := component.NewAttack(1)
				a.Attacking = true
				a.Direction = cp.Vector{X: 1}
				a.Projectile = "friend_bullet.yaml"
				return a
			},
			want: 1,
		},
		{
			name: "circular",
			attack: func() *component.Attack {
				a := component.NewAttack(1)
				a.Attacking = true
				a.Circular = true
				a.CircularCount = 8
				a.Projectile = "friend_bullet.yaml"
				return a
			},
			want: 8,
		},
		{
			name: "idle",
			attack: func() *component.Attack {
				a := component.NewAttack(1)
				a.Direction = cp.Vector{X: 1}
				a.Projectile = "friend_bullet.yaml"
				return a
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld(1)
			newShooter(t, w, tt.attack())

			run(w, tick, input.State{}, NewAttackSystem())

			assert.Equal(t, tt.want, ecs.Count(w, component.ProjectileComponent.Kind()))
		})
	}
}

func TestAttackSystemOneVolleyPerTick(t *testing.T) {
	w := ecs.NewWorld(1)
	a := component.NewAttack(1)
	a.Attacking = true
	a.Direction = cp.Vector{X: 1}
	a.Projectile = "friend_bullet.yaml"
	newShooter(t, w, a)

	stats, err := spawnStats(w)
	require.NoError(t, err)

	run(w, 10, input.State{}, NewAttackSystem())
	assert.Equal(t, 1, ecs.Count(w, component.ProjectileComponent.Kind()))
	assert.Equal(t, 1, stats.Shots)
}

func TestFireProjectileTagsSide(t *testing.T) {
	w := ecs.NewWorld(1)
	pe, err := FireProjectile(w, "enemy_bullet.yaml", cp.Vector{X: 5, Y: 5}, cp.Vector{X: 0, Y: -2}, component.SideEnemy)
	require.NoError(t, err)

	assert.Equal(t, component.SideEnemy, sideOf(w, pe))
	p, _ := ecs.Get(w, pe, component.ProjectileComponent.Kind())
	assert.InDelta(t, 0, p.Velocity.X, 1e-9)
	assert.InDelta(t, -p.Speed, p.Velocity.Y, 1e-9)

	_, err = FireProjectile(w, "stats.yaml", cp.Vector{}, cp.Vector{X: 1}, component.SideEnemy)
	require.Error(t, err)
}

func TestProjectileSystemExpires(t *testing.T) {
	w := ecs.NewWorld(1)
	pe, err := FireProjectile(w, "friend_bullet.yaml", cp.Vector{}, cp.Vector{X: 1}, component.SideFriend)
	require.NoError(t, err)
	p, _ := ecs.Get(w, pe, component.ProjectileComponent.Kind())
	tr, _ := ecs.Get(w, pe, component.TransformComponent.Kind())

	run(w, 1, input.State{}, NewProjectileSystem())
	require.True(t, ecs.IsAlive(w, pe))
	assert.InDelta(t, p.Speed, tr.X, 1e-9)

	run(w, 1, input.State{}, NewProjectileSystem())
	assert.False(t, ecs.IsAlive(w, pe))
}

func newTarget(t *testing.T, w *ecs.World, pos cp.Vector, side component.Side, hp int) (ecs.Entity, *component.Health) {
	t.Helper()
	e := place(t, w, pos, 10)
	health := component.NewHealth(hp)
	require.NoError(t, ecs.Add(w, e, component.HealthComponent.Kind(), health))
	require.NoError(t, ecs.Add(w, e, component.FactionComponent.Kind(), &component.Faction{Side: side}))
	return e, health
}

func TestCombatSystemProjectileHits(t *testing.T) {
	tests := []struct {
		name        string
		targetSide  component.Side
		penetrating bool
		wantHealth  int
		wantAlive   bool
	}{
		{name: "hostile", targetSide: component.SideEnemy, wantHealth: 40, wantAlive: false},
		{name: "penetrating", targetSide: component.SideEnemy, penetrating: true, wantHealth: 40, wantAlive: true},
		{name: "same side", targetSide: component.SideFriend, wantHealth: 50, wantAlive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld(1)
			_, health := newTarget(t, w, cp.Vector{X: 5}, tt.targetSide, 50)
			pe, err := FireProjectile(w, "friend_bullet.yaml", cp.Vector{}, cp.Vector{X: 1}, component.SideFriend)
			require.NoError(t, err)
			p, _ := ecs.Get(w, pe, component.ProjectileComponent.Kind())
			p.Penetrating = tt.penetrating

			run(w, tick, input.State{}, NewTriggerSystem(), NewCombatSystem())

			assert.Equal(t, tt.wantHealth, health.Current)
			assert.Equal(t, tt.wantAlive, ecs.IsAlive(w, pe))
		})
	}
}

func TestCombatSystemProjectileFlightPath(t *testing.T) {
	tests := []struct {
		name        string
		penetrating bool
		wantNear    int
		wantFar     int
		wantAlive   bool
	}{
		{name: "penetrating hits both", penetrating: true, wantNear: 40, wantFar: 40, wantAlive: true},
		{name: "single hit stops at first", wantNear: 40, wantFar: 50, wantAlive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld(1)
			_, near := newTarget(t, w, cp.Vector{X: 30}, component.SideEnemy, 50)
			_, far := newTarget(t, w, cp.Vector{X: 120}, component.SideEnemy, 50)
			pe, err := FireProjectile(w, "friend_bullet.yaml", cp.Vector{}, cp.Vector{X: 1}, component.SideFriend)
			require.NoError(t, err)
			p, _ := ecs.Get(w, pe, component.ProjectileComponent.Kind())
			p.Penetrating = tt.penetrating

			sched := ecs.NewScheduler(NewProjectileSystem(), NewTriggerSystem(), NewCombatSystem())
			// 30 ticks carry the bullet to x=160, past both targets and inside its lifespan.
			for i := 0; i < 30; i++ {
				sched.Step(w, tick, input.State{})
			}

			assert.Equal(t, tt.wantNear, near.Current)
			assert.Equal(t, tt.wantFar, far.Current)
			assert.Equal(t, tt.wantAlive, ecs.IsAlive(w, pe))
		})
	}
}

func TestCombatSystemKnocksBackBodies(t *testing.T) {
	w := ecs.NewWorld(1)
	target, _ := newTarget(t, w, cp.Vector{X: 5}, component.SideEnemy, 50)
	require.NoError(t, ecs.Add(w, target, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 10, Mass: 1}))
	_, err := FireProjectile(w, "friend_bullet.yaml", cp.Vector{}, cp.Vector{X: 1}, component.SideFriend)
	require.NoError(t, err)

	run(w, tick, input.State{}, NewTriggerSystem(), NewCombatSystem())

	body, _ := ecs.Get(w, target, component.PhysicsBodyComponent.Kind())
	require.Len(t, body.Pending, 1)
	assert.Greater(t, body.Pending[0].X, 0.0)
	assert.True(t, ecs.Has(w, target, component.KnockbackComponent.Kind()))
}

func TestCombatSystemReflects(t *testing.T) {
	w := ecs.NewWorld(1)
	shield, err := FireProjectile(w, "reflector_shot.yaml", cp.Vector{}, cp.Vector{X: 1}, component.SideFriend)
	require.NoError(t, err)
	bullet, err := FireProjectile(w, "enemy_bullet.yaml", cp.Vector{X: 4}, cp.Vector{X: -1}, component.SideEnemy)
	require.NoError(t, err)

	run(w, tick, input.State{}, NewTriggerSystem(), NewCombatSystem())

	require.True(t, ecs.IsAlive(w, shield))
	require.True(t, ecs.IsAlive(w, bullet))
	p, _ := ecs.Get(w, bullet, component.ProjectileComponent.Kind())
	assert.Greater(t, p.Velocity.X, 0.0)
	assert.Equal(t, component.SideFriend, sideOf(w, bullet))
}

func TestCombatSystemDiesOnContact(t *testing.T) {
	w := ecs.NewWorld(1)
	_, party := newParty(t, w, cp.Vector{})
	ace, _ := ecs.Get(w, ecs.Entity(party.Friend(common.North)), component.TransformComponent.Kind())

	bomber := place(t, w, ace.Position(), 10)
	require.NoError(t, ecs.Add(w, bomber, component.EnemyComponent.Kind(), &component.Enemy{DiesOnContact: true}))

	run(w, tick, input.State{}, NewTriggerSystem(), NewCombatSystem())

	assert.True(t, ecs.Has(w, bomber, component.DeadComponent.Kind()))
}

func spawnStats(w *ecs.World) (*component.Stats, error) {
	e := ecs.CreateEntity(w)
	stats := &component.Stats{}
	if err := ecs.Add(w, e, component.StatsComponent.Kind(), stats); err != nil {
		return nil, err
	}
	return stats, nil
}
