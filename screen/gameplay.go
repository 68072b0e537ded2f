package screen

import (
	"log"

	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/entity"
	"github.com/milk9111/sqwad/ecs/signal"
	"github.com/milk9111/sqwad/ecs/system"
	"github.com/milk9111/sqwad/levels"
	"github.com/milk9111/sqwad/prefabs"
	"github.com/milk9111/sqwad/state"
	"github.com/milk9111/sqwad/ui"
)

// GameplayScreen runs a fresh world built from its level. When the party is
// defeated it pushes the game over screen.
type GameplayScreen struct {
	state.Base

	app  *App
	spec prefabs.ScreenSpec

	world *ecs.World
	sched *ecs.Scheduler
	party ecs.Entity
	wheel *WheelChild
	subs  []*signal.Subscription
}

func newGameplayScreen(app *App, spec prefabs.ScreenSpec) *GameplayScreen {
	g := &GameplayScreen{app: app, spec: spec}
	if spec.Wheel != nil {
		g.wheel = NewWheelChild(*spec.Wheel)
		if err := g.AddChild("friend_wheel", g.wheel); err != nil {
			log.Printf("screen: gameplay: %v", err)
		}
	}
	return g
}

func (g *GameplayScreen) OnInitializeState(mgr *state.Manager) {
	g.world = ecs.NewWorld(g.app.nextSeed())
	g.sched = system.NewGameplayScheduler(system.Options{
		Audio:   g.app.opts.Audio,
		Damping: g.app.opts.Damping,
	})

	level := g.spec.Level
	if level == "" {
		level = levels.Default
	}
	party, err := entity.LoadLevel(g.world, level)
	if err != nil {
		log.Printf("screen: gameplay: load level %s: %v", level, err)
	} else {
		g.party = party
		if p, ok := ecs.Get(g.world, party, component.PartyComponent.Kind()); ok {
			sub := p.Defeated.Connect(func(struct{}) { g.defeated() })
			ecs.Own(g.world, party, sub)
			g.subs = append(g.subs, sub)
		}
	}

	g.Initialize(mgr, g)
}

func (g *GameplayScreen) OnUpdateState(dt float64) {
	g.sched.Step(g.world, dt, g.app.Input())
	g.Base.OnUpdateState(dt)
}

// OnExitState keeps the world around so its final state can still be read.
func (g *GameplayScreen) OnExitState() {
	g.Base.OnExitState()
	for _, sub := range g.subs {
		sub.Close()
	}
	g.subs = nil
}

func (g *GameplayScreen) World() *ecs.World { return g.world }

func (g *GameplayScreen) Party() ecs.Entity { return g.party }

// Wheel returns the HUD wheel, or nil when the screen has none.
func (g *GameplayScreen) Wheel() *ui.FriendWheel {
	if g.wheel == nil {
		return nil
	}
	return g.wheel.Wheel()
}

func (g *GameplayScreen) defeated() {
	id, err := g.Manager().Lookup(GameOver)
	if err != nil {
		log.Printf("screen: gameplay: %v", err)
		return
	}
	if err := g.PushState(id); err != nil {
		log.Printf("screen: gameplay: %v", err)
	}
}
