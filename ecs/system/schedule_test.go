package system

import (
	"testing"

	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/entity"
	"github.com/milk9111/sqwad/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameplaySchedulerRunsArena(t *testing.T) {
	w := ecs.NewWorld(42)
	partyEnt, err := entity.LoadLevel(w, "arena.yaml")
	require.NoError(t, err)

	player := &recordingPlayer{}
	sched := NewGameplayScheduler(Options{Audio: player})
	require.Len(t, sched.Systems(), 16)

	var in input.State
	in.SetButton(input.Fire, true, true)
	in.MoveX = 1
	for i := 0; i < 180; i++ {
		sched.Step(w, tick, in)
	}

	stats, ok := worldStats(w)
	require.True(t, ok)
	assert.Greater(t, stats.Shots, 0)
	assert.InDelta(t, 3.0, stats.Survived, 1e-6)
	assert.NotEmpty(t, player.played)
	assert.Zero(t, w.Events().Len())

	partyT, ok := ecs.Get(w, partyEnt, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Greater(t, partyT.X, 0.0)
}
