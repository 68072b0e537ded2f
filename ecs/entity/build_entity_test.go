package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEntityPrefabs(t *testing.T) {
	tests := []struct {
		prefab string
		check  func(t *testing.T, w *ecs.World, e ecs.Entity)
	}{
		{
			prefab: "enemy_grunt.yaml",
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, component.DefaultRetargetInterval, enemy.RetargetInterval)
				require.Len(t, enemy.ChanceDrop, 1)
				assert.Equal(t, "health_pickup.yaml", enemy.ChanceDrop[0].Prefab)

				health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, 30, health.Current)
				assert.Equal(t, component.SideEnemy, mustFaction(t, w, e))
			},
		},
		{
			prefab: "enemy_turret.yaml",
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				attack, ok := ecs.Get(w, e, component.AttackComponent.Kind())
				require.True(t, ok)
				assert.True(t, attack.Circular)
				assert.Len(t, attack.Volley(), 8)
				assert.Equal(t, attack.Interval, attack.Timer)
			},
		},
		{
			prefab: "explosive_orb.yaml",
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
				require.True(t, ok)
				assert.True(t, p.Penetrating)
				assert.True(t, p.Explosive)
				assert.False(t, ecs.Has(w, e, component.FactionComponent.Kind()))
			},
		},
		{
			prefab: "bomber_nest.yaml",
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				sp, ok := ecs.Get(w, e, component.SpawnerComponent.Kind())
				require.True(t, ok)
				assert.True(t, sp.Infinite)
				assert.True(t, sp.RequiresTrigger)
				assert.False(t, sp.Triggered)
			},
		},
		{
			prefab: "friend_ace.yaml",
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				friend, ok := ecs.Get(w, e, component.FriendComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, "ace_south", friend.Sprites[common.South])

				anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, "idle", anim.Current)
				assert.True(t, anim.Playing)

				sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, uint8(0xe8), sprite.Color.R)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.prefab, func(t *testing.T) {
			w := ecs.NewWorld(1)
			e, err := BuildEntity(w, tt.prefab)
			require.NoError(t, err)
			require.True(t, ecs.IsAlive(w, e))
			tt.check(t, w, e)
		})
	}
}

func mustFaction(t *testing.T, w *ecs.World, e ecs.Entity) component.Side {
	t.Helper()
	f, ok := ecs.Get(w, e, component.FactionComponent.Kind())
	require.True(t, ok)
	return f.Side
}

func TestBuildEntityErrors(t *testing.T) {
	tests := []struct {
		name      string
		prefab    string
		overrides map[string]any
	}{
		{name: "missing prefab", prefab: "nope.yaml"},
		{name: "unknown component", prefab: "door.yaml", overrides: map[string]any{"jetpack": map[string]any{}}},
		{name: "bad health", prefab: "enemy_grunt.yaml", overrides: map[string]any{"health": map[string]any{"max": 0}}},
		{name: "bad side", prefab: "enemy_grunt.yaml", overrides: map[string]any{"faction": map[string]any{"side": "pirates"}}},
		{name: "bad spawner", prefab: "grunt_spawner.yaml", overrides: map[string]any{"spawner": map[string]any{"count": 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld(1)
			_, err := SpawnWithOverrides(w, tt.prefab, cp.Vector{}, tt.overrides)
			require.Error(t, err)
			assert.Empty(t, ecs.Entities(w))
		})
	}
}

func TestSpawnWithOverridesMerges(t *testing.T) {
	w := ecs.NewWorld(1)
	e, err := SpawnWithOverrides(w, "door.yaml", cp.Vector{X: 4, Y: 5}, map[string]any{
		"door": map[string]any{"other_x": -10},
	})
	require.NoError(t, err)

	door, ok := ecs.Get(w, e, component.DoorComponent.Kind())
	require.True(t, ok)
	assert.False(t, door.Locked)
	assert.Equal(t, -10.0, door.OtherX)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, cp.Vector{X: 4, Y: 5}, tr.Position())
	assert.Equal(t, 1.0, tr.ScaleX)
}

func TestNewPartyPlacesMembers(t *testing.T) {
	w := ecs.NewWorld(1)
	centre := cp.Vector{X: 100, Y: -50}
	e, err := NewParty(w, "party.yaml", centre)
	require.NoError(t, err)

	party, ok := ecs.Get(w, e, component.PartyComponent.Kind())
	require.True(t, ok)
	assert.False(t, party.Empty())

	for _, d := range common.Directions {
		fe := ecs.Entity(party.Friend(d))
		require.True(t, ecs.IsAlive(w, fe), d.String())

		friend, _ := ecs.Get(w, fe, component.FriendComponent.Kind())
		assert.Equal(t, uint64(e), friend.Party)
		assert.Equal(t, d, friend.Direction)
		assert.Equal(t, d.Vector(party.Spread), friend.Offset.Position)

		tr, _ := ecs.Get(w, fe, component.TransformComponent.Kind())
		assert.Equal(t, centre.Add(d.Vector(party.Spread)), tr.Position())
	}
}

func TestNewPartyRejectsNonParty(t *testing.T) {
	w := ecs.NewWorld(1)
	_, err := NewParty(w, "door.yaml", cp.Vector{})
	require.Error(t, err)
	assert.Empty(t, ecs.Entities(w))
}

func TestHealthDeathMarksEntity(t *testing.T) {
	w := ecs.NewWorld(1)
	e, err := BuildEntity(w, "friend_ace.yaml")
	require.NoError(t, err)
	health, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())

	health.Damage(1)
	assert.Equal(t, component.AnimationHurt, anim.Current)
	assert.False(t, ecs.Has(w, e, component.DeadComponent.Kind()))

	health.Damage(health.Max)
	assert.True(t, ecs.Has(w, e, component.DeadComponent.Kind()))
}

func TestLoadLevelToWorld(t *testing.T) {
	w := ecs.NewWorld(1)
	lvl := &levels.Level{
		Name:   "test",
		Width:  400,
		Height: 300,
		Walls:  true,
		Party:  levels.Entity{Prefab: "party.yaml", X: 10},
		Entities: []levels.Entity{
			{Prefab: "enemy_grunt.yaml", X: 100},
			{Prefab: "stats.yaml"},
		},
	}

	partyEnt, err := LoadLevelToWorld(w, lvl)
	require.NoError(t, err)
	assert.True(t, ecs.Has(w, partyEnt, component.PartyComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(w, component.BoundsComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(w, component.EnemyComponent.Kind()))
	assert.Equal(t, 4, ecs.Count(w, component.FriendComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(w, component.StatsComponent.Kind()))
}

func TestLoadLevelArena(t *testing.T) {
	w := ecs.NewWorld(1)
	_, err := LoadLevel(w, levels.Default)
	require.NoError(t, err)
	assert.Equal(t, 2, ecs.Count(w, component.DoorComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(w, component.PartyComponent.Kind()))
}
