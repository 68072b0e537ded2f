package ui

import (
	"github.com/milk9111/sqwad/ecs/signal"
	"github.com/milk9111/sqwad/input"
	"github.com/milk9111/sqwad/prefabs"
)

type Button struct {
	Name  string
	Label string
	URL   string
}

// ButtonGroup is a vertical list of buttons with keyboard focus. A disabled
// group ignores presses.
type ButtonGroup struct {
	buttons []Button
	focus   int
	enabled bool

	Pressed signal.Signal[Button]
}

// NewButtonGroup focuses the first button.
func NewButtonGroup(specs []prefabs.ButtonSpec) *ButtonGroup {
	g := &ButtonGroup{enabled: true, focus: -1}
	for _, spec := range specs {
		g.buttons = append(g.buttons, Button{Name: spec.Name, Label: spec.Label, URL: spec.URL})
	}
	if len(g.buttons) > 0 {
		g.focus = 0
	}
	return g
}

func (g *ButtonGroup) Buttons() []Button {
	if g == nil {
		return nil
	}
	out := make([]Button, len(g.buttons))
	copy(out, g.buttons)
	return out
}

func (g *ButtonGroup) Enabled() bool { return g != nil && g.enabled }

func (g *ButtonGroup) SetEnabled(enabled bool) {
	if g == nil {
		return
	}
	g.enabled = enabled
}

// Focused returns the button holding focus.
func (g *ButtonGroup) Focused() (Button, bool) {
	if g == nil || g.focus < 0 || g.focus >= len(g.buttons) {
		return Button{}, false
	}
	return g.buttons[g.focus], true
}

// Focus moves focus to the named button. An empty name clears focus.
func (g *ButtonGroup) Focus(name string) bool {
	if g == nil {
		return false
	}
	if name == "" {
		g.focus = -1
		return true
	}
	for i, b := range g.buttons {
		if b.Name == name {
			g.focus = i
			return true
		}
	}
	return false
}

func (g *ButtonGroup) move(step int) {
	n := len(g.buttons)
	if n == 0 {
		return
	}
	if g.focus < 0 {
		g.focus = 0
		return
	}
	g.focus = (g.focus + step + n) % n
}

// Press activates the named button.
func (g *ButtonGroup) Press(name string) bool {
	if g == nil || !g.enabled {
		return false
	}
	for _, b := range g.buttons {
		if b.Name == name {
			g.Pressed.Emit(b)
			return true
		}
	}
	return false
}

// HandleInput moves focus with up/down and presses the focused button on
// select.
func (g *ButtonGroup) HandleInput(in input.State) {
	if g == nil || !g.enabled {
		return
	}
	switch {
	case in.Pressed(input.Up):
		g.move(-1)
	case in.Pressed(input.Down):
		g.move(1)
	}
	if in.Pressed(input.Select) {
		if b, ok := g.Focused(); ok {
			g.Pressed.Emit(b)
		}
	}
}

func (g *ButtonGroup) Release() {
	if g == nil {
		return
	}
	g.Pressed.Reset()
}
