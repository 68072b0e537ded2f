// Package screen holds the concrete screens of the game and the App that
// registers them with a state manager.
package screen

import (
	"fmt"

	"github.com/milk9111/sqwad/ecs/system"
	"github.com/milk9111/sqwad/input"
	"github.com/milk9111/sqwad/prefabs"
	"github.com/milk9111/sqwad/state"
)

const (
	MainMenu = "main_menu"
	Gameplay = "gameplay"
	GameOver = "game_over"
)

type Options struct {
	// Seed is the rng seed of the first gameplay session; each later
	// session adds one.
	Seed    uint64
	Audio   system.AudioPlayer
	OpenURL func(url string) error
	// Initial overrides the screen named in screens.yaml.
	Initial string
	Damping float64
}

// App owns the state manager and the input of the current tick.
type App struct {
	opts     Options
	spec     prefabs.ScreensSpec
	manager  *state.Manager
	rotate   *input.RotateDetector
	in       input.State
	sessions uint64
}

func NewApp(opts Options) (*App, error) {
	spec, err := prefabs.LoadScreensSpec()
	if err != nil {
		return nil, err
	}

	app := &App{opts: opts, spec: spec, rotate: input.NewRotateDetector()}

	reg := state.NewRegistry()
	menus := map[string]menuHandlers{
		MainMenu: mainMenuHandlers,
		GameOver: gameOverHandlers,
	}
	for _, name := range []string{MainMenu, Gameplay, GameOver} {
		screenSpec, ok := spec.Find(name)
		if !ok {
			return nil, fmt.Errorf("screen: %s missing from %s", name, prefabs.ScreensFile)
		}
		var factory state.Factory
		if name == Gameplay {
			factory = func() state.Screen { return newGameplayScreen(app, screenSpec) }
		} else {
			handlers := menus[name]
			factory = func() state.Screen { return newMenu(app, screenSpec, handlers) }
		}
		if _, err := reg.Register(name, factory); err != nil {
			return nil, err
		}
	}

	initial := opts.Initial
	if initial == "" {
		initial = spec.Initial
	}
	if initial == "" {
		initial = MainMenu
	}
	id, err := reg.Lookup(initial)
	if err != nil {
		return nil, err
	}

	m, err := state.NewManager(reg, id)
	if err != nil {
		return nil, err
	}
	app.manager = m
	return app, nil
}

// Update runs one tick of the displayed screen with in as its input.
func (a *App) Update(dt float64, in input.State) {
	if a == nil {
		return
	}
	a.rotate.Apply(&in)
	a.in = in
	a.manager.Update(dt)
}

// Input is the input of the tick being run.
func (a *App) Input() input.State {
	return a.in
}

func (a *App) Manager() *state.Manager {
	return a.manager
}

func (a *App) Current() state.Screen {
	return a.manager.Current()
}

// CurrentName is the registered name of the displayed screen.
func (a *App) CurrentName() string {
	id, ok := a.manager.Top()
	if !ok {
		return ""
	}
	return a.manager.Registry().Name(id)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.manager.Close()
}

func (a *App) nextSeed() uint64 {
	seed := a.opts.Seed + a.sessions
	a.sessions++
	return seed
}
