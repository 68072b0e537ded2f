package system

import "github.com/milk9111/sqwad/ecs"

// Options tune the gameplay schedule.
type Options struct {
	Audio   AudioPlayer
	Damping float64
}

// NewGameplayScheduler returns the systems of one gameplay tick in order:
// input and AI first, then cooldowns and projectiles, physics, overlaps and
// their consequences, deaths, and finally presentation.
func NewGameplayScheduler(opts Options) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPartySystem(),
		NewEnemyAISystem(),
		NewSpawnerSystem(),
		NewAttackSystem(),
		NewProjectileSystem(),
		NewPhysicsSystem(opts.Damping),
		NewLerpSystem(),
		NewTriggerSystem(),
		NewCombatSystem(),
		NewInteractionSystem(),
		NewDeathSystem(),
		NewLifeSpanSystem(),
		NewStatsSystem(),
		NewAnimationSystem(),
		NewAudioSystem(opts.Audio),
		NewSpriteSortSystem(),
	)
}
