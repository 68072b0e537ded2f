package screen

import (
	"log"

	"github.com/milk9111/sqwad/ecs/signal"
	"github.com/milk9111/sqwad/input"
	"github.com/milk9111/sqwad/prefabs"
	"github.com/milk9111/sqwad/state"
	"github.com/milk9111/sqwad/ui"
)

// titleElement is the banner a menu hides before it leaves.
const titleElement = "sqwad"

type menuHandlers map[string]func(m *Menu, b ui.Button)

var mainMenuHandlers = menuHandlers{
	"play": func(m *Menu, _ ui.Button) {
		m.leave(func() error { return m.pushNamed(Gameplay) })
	},
	"controls": func(m *Menu, _ ui.Button) { m.openPanel("controls") },
	"credits":  func(m *Menu, _ ui.Button) { m.openPanel("credits") },
	"other_games": func(m *Menu, b ui.Button) {
		if m.app.opts.OpenURL == nil || b.URL == "" {
			return
		}
		if err := m.app.opts.OpenURL(b.URL); err != nil {
			log.Printf("screen: open %s: %v", b.URL, err)
		}
	},
}

var gameOverHandlers = menuHandlers{
	"replay": func(m *Menu, _ ui.Button) {
		m.leave(m.PopState)
	},
	"main_menu": func(m *Menu, _ ui.Button) {
		id, err := m.Manager().Lookup(MainMenu)
		if err != nil {
			log.Printf("screen: %v", err)
			return
		}
		if err := m.PopToState(id); err != nil {
			log.Printf("screen: %v", err)
		}
	},
}

// Menu is a screen of hideable panels and a focusable button list. The
// main menu and the game over screen differ only in their handlers.
type Menu struct {
	state.Base

	app      *App
	spec     prefabs.ScreenSpec
	handlers menuHandlers

	canvas  *ui.Canvas
	buttons *ui.ButtonGroup
	subs    []*signal.Subscription
	next    func() error
}

func newMenu(app *App, spec prefabs.ScreenSpec, handlers menuHandlers) *Menu {
	m := &Menu{app: app, spec: spec, handlers: handlers}
	for _, path := range spec.Scripts {
		if err := m.AddChild(path, NewScriptChild(path)); err != nil {
			log.Printf("screen: %s: %v", spec.Name, err)
		}
	}
	return m
}

func (m *Menu) OnInitializeState(mgr *state.Manager) {
	canvas, err := ui.NewCanvasFromSpec(m.spec.Elements)
	if err != nil {
		log.Printf("screen: %s: %v", m.spec.Name, err)
		canvas = ui.NewCanvas()
	}
	m.canvas = canvas
	m.buttons = ui.NewButtonGroup(m.spec.Buttons)
	m.subs = append(m.subs, m.buttons.Pressed.Connect(m.handle))
	if title, err := m.canvas.Get(titleElement); err == nil {
		m.subs = append(m.subs, title.Hidden.Connect(func(*ui.Hideable) { m.runNext() }))
	}

	m.Initialize(mgr, m)
}

func (m *Menu) OnUpdateState(dt float64) {
	m.buttons.HandleInput(m.app.Input())
	m.canvas.Update(dt)
	m.Base.OnUpdateState(dt)
}

func (m *Menu) OnExitState() {
	m.Base.OnExitState()
	for _, sub := range m.subs {
		sub.Close()
	}
	m.subs = nil
	m.buttons.Release()
	m.canvas.Release()
}

func (m *Menu) Name() string { return m.spec.Name }

func (m *Menu) Canvas() *ui.Canvas { return m.canvas }

func (m *Menu) Buttons() *ui.ButtonGroup { return m.buttons }

func (m *Menu) Input() input.State { return m.app.Input() }

// Press activates a button as if it had been selected.
func (m *Menu) Press(name string) bool {
	return m.buttons.Press(name)
}

// Action runs a named menu action for scripts.
func (m *Menu) Action(name string, arg any) bool {
	switch name {
	case "enable_buttons":
		m.buttons.SetEnabled(true)
	case "disable_buttons":
		m.buttons.SetEnabled(false)
	case "focus":
		s, _ := arg.(string)
		return m.buttons.Focus(s)
	default:
		return false
	}
	return true
}

func (m *Menu) handle(b ui.Button) {
	fn, ok := m.handlers[b.Name]
	if !ok {
		log.Printf("screen: %s: no handler for %q", m.spec.Name, b.Name)
		return
	}
	fn(m, b)
}

func (m *Menu) openPanel(name string) {
	if err := m.canvas.Show(name); err != nil {
		log.Printf("screen: %s: %v", m.spec.Name, err)
		return
	}
	m.buttons.SetEnabled(false)
}

// leave hides the title and runs next once it is gone.
func (m *Menu) leave(next func() error) {
	m.buttons.SetEnabled(false)
	m.buttons.Focus("")
	m.next = next
	if err := m.canvas.Hide(titleElement); err != nil {
		m.runNext()
	}
}

func (m *Menu) runNext() {
	next := m.next
	m.next = nil
	if next == nil {
		return
	}
	if err := next(); err != nil {
		log.Printf("screen: %s: %v", m.spec.Name, err)
	}
}

func (m *Menu) pushNamed(name string) error {
	id, err := m.Manager().Lookup(name)
	if err != nil {
		return err
	}
	return m.PushState(id)
}
