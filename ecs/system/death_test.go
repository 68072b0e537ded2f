package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/entity"
	"github.com/milk9111/sqwad/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kill(t *testing.T, w *ecs.World, e ecs.Entity) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, component.DeadComponent.Kind(), &component.Dead{}))
}

func TestDeathSystemEnemyDrops(t *testing.T) {
	tests := []struct {
		name      string
		enemy     component.Enemy
		wantDrops int
	}{
		{name: "nothing", enemy: component.Enemy{}, wantDrops: 0},
		{name: "always", enemy: component.Enemy{AlwaysDrop: []string{"health_pickup.yaml", "health_pickup.yaml"}}, wantDrops: 2},
		{
			name: "chance",
			enemy: component.Enemy{ChanceDrop: []component.ChanceDrop{
				{Prefab: "health_pickup.yaml", Chance: 1},
				{Prefab: "health_pickup.yaml", Chance: 0},
			}},
			wantDrops: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld(7)
			stats, err := spawnStats(w)
			require.NoError(t, err)

			e := place(t, w, cp.Vector{X: 10, Y: 20}, 0)
			enemy := tt.enemy
			enemy.DropForce = 50
			require.NoError(t, ecs.Add(w, e, component.EnemyComponent.Kind(), &enemy))
			kill(t, w, e)

			run(w, tick, input.State{}, NewDeathSystem())

			assert.False(t, ecs.IsAlive(w, e))
			assert.Equal(t, tt.wantDrops, ecs.Count(w, component.PickupComponent.Kind()))
			assert.Equal(t, 1, stats.Kills)
			assert.Equal(t, tt.wantDrops, stats.Drops)
			require.Len(t, w.Events().Peek(ecs.EventDied), 1)

			ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody) {
				require.Len(t, body.Pending, 1)
				assert.InDelta(t, 50, body.Pending[0].Length(), 1e-9)
			})
		})
	}
}

func TestDeathSystemChanceDropRate(t *testing.T) {
	w := ecs.NewWorld(3)
	grunt, err := entity.Spawn(w, "enemy_grunt.yaml", cp.Vector{})
	require.NoError(t, err)
	gruntEnemy, ok := ecs.Get(w, grunt, component.EnemyComponent.Kind())
	require.True(t, ok)
	require.Len(t, gruntEnemy.ChanceDrop, 1)
	drops := append([]component.ChanceDrop(nil), gruntEnemy.ChanceDrop...)
	chance := drops[0].Chance
	require.InDelta(t, 0.25, chance, 1e-9, "chance is the probability of dropping")
	ecs.DestroyEntity(w, grunt)

	const n = 2000
	for i := 0; i < n; i++ {
		e := place(t, w, cp.Vector{X: float64(i)}, 0)
		require.NoError(t, ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{ChanceDrop: drops}))
		kill(t, w, e)
	}

	run(w, tick, input.State{}, NewDeathSystem())

	rate := float64(ecs.Count(w, component.PickupComponent.Kind())) / n
	assert.InDelta(t, chance, rate, 0.05)
}

func TestDeathSystemBomberLeavesBlast(t *testing.T) {
	w := ecs.NewWorld(1)
	bomber, err := entity.Spawn(w, "enemy_bomber.yaml", cp.Vector{X: 30})
	require.NoError(t, err)
	kill(t, w, bomber)

	run(w, tick, input.State{}, NewDeathSystem())

	require.Equal(t, 1, ecs.Count(w, component.ProjectileComponent.Kind()))
	blast, _ := ecs.First(w, component.ProjectileComponent.Kind())
	assert.Equal(t, component.SideEnemy, sideOf(w, blast))
	tr, _ := ecs.Get(w, blast, component.TransformComponent.Kind())
	assert.Equal(t, cp.Vector{X: 30}, tr.Position())
}

func TestDeathSystemPartyDefeat(t *testing.T) {
	w := ecs.NewWorld(1)
	partyEnt, party := newParty(t, w, cp.Vector{})

	defeated := 0
	party.Defeated.Connect(func(struct{}) { defeated++ })

	ace := ecs.Entity(party.Friend(common.North))
	health, ok := ecs.Get(w, ace, component.HealthComponent.Kind())
	require.True(t, ok)
	health.Damage(health.Max)
	require.True(t, ecs.Has(w, ace, component.DeadComponent.Kind()))

	run(w, tick, input.State{}, NewDeathSystem())
	assert.False(t, ecs.IsAlive(w, ace))
	assert.Zero(t, party.Friend(common.North))
	assert.False(t, party.Empty())
	assert.Zero(t, defeated)

	for _, d := range []common.Direction{common.East, common.South, common.West} {
		kill(t, w, ecs.Entity(party.Friend(d)))
	}
	run(w, tick, input.State{}, NewDeathSystem())

	assert.True(t, party.Empty())
	assert.True(t, party.Lost)
	assert.Equal(t, 1, defeated)
	evts := w.Events().Peek(ecs.EventPartyDefeated)
	require.Len(t, evts, 1)
	assert.Equal(t, partyEnt, evts[0].Entity)
	assert.True(t, ecs.IsAlive(w, partyEnt))

	run(w, tick, input.State{}, NewDeathSystem())
	assert.Equal(t, 1, defeated)
}

func TestLifeSpanSystem(t *testing.T) {
	w := ecs.NewWorld(1)
	e := place(t, w, cp.Vector{}, 0)
	require.NoError(t, ecs.Add(w, e, component.LifeSpanComponent.Kind(), &component.LifeSpan{Seconds: 1}))

	run(w, 0.6, input.State{}, NewLifeSpanSystem())
	assert.True(t, ecs.IsAlive(w, e))
	run(w, 0.6, input.State{}, NewLifeSpanSystem())
	assert.False(t, ecs.IsAlive(w, e))
}

func TestAnimationSystem(t *testing.T) {
	defs := map[string]component.AnimationDef{
		"idle": {Name: "idle", FrameCount: 4, FPS: 10, Loop: true},
		"hurt": {Name: "hurt", FrameCount: 2, FPS: 10, Next: "idle"},
		"die":  {Name: "die", FrameCount: 3, FPS: 10},
	}
	tests := []struct {
		name        string
		clip        string
		elapsed     float64
		wantClip    string
		wantFrame   int
		wantPlaying bool
	}{
		{name: "loops", clip: "idle", elapsed: 0.55, wantClip: "idle", wantFrame: 1, wantPlaying: true},
		{name: "chains", clip: "hurt", elapsed: 0.25, wantClip: "idle", wantFrame: 0, wantPlaying: true},
		{name: "holds last frame", clip: "die", elapsed: 1, wantClip: "die", wantFrame: 2, wantPlaying: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld(1)
			e := ecs.CreateEntity(w)
			anim := &component.Animation{Defs: defs}
			require.True(t, anim.Play(tt.clip, true))
			require.NoError(t, ecs.Add(w, e, component.AnimationComponent.Kind(), anim))

			run(w, tt.elapsed, input.State{}, NewAnimationSystem())

			assert.Equal(t, tt.wantClip, anim.Current)
			assert.Equal(t, tt.wantFrame, anim.Frame)
			assert.Equal(t, tt.wantPlaying, anim.Playing)
		})
	}
}

type recordingPlayer struct{ played []string }

func (p *recordingPlayer) Play(name string) { p.played = append(p.played, name) }

func TestAudioSystemDrainsRequests(t *testing.T) {
	w := ecs.NewWorld(1)
	e := ecs.CreateEntity(w)
	audio := &component.Audio{}
	require.NoError(t, ecs.Add(w, e, component.AudioComponent.Kind(), audio))
	audio.Request("shoot")
	audio.Request("shoot")

	player := &recordingPlayer{}
	run(w, tick, input.State{}, NewAudioSystem(player))

	assert.Equal(t, []string{"shoot", "shoot"}, player.played)
	assert.Empty(t, audio.Pending)

	audio.Request("hit")
	run(w, tick, input.State{}, NewAudioSystem(nil))
	assert.Empty(t, audio.Pending)
}

func TestSortOrder(t *testing.T) {
	assert.Greater(t, SortOrder(-10), SortOrder(10))
	assert.Equal(t, 0, SortOrder(0))
}
