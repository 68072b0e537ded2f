package state

import (
	"fmt"
	"log"
	"strings"
)

// Manager owns the state stack and the screen displayed for its top.
//
// Stack changes requested while a screen is initializing or updating are
// queued and applied once that call returns, so a screen is never torn down
// from inside its own hooks. Errors of queued requests are logged.
type Manager struct {
	registry *Registry
	stack    []StateID
	current  Screen

	busy    int
	pending []func() error
}

// NewManager displays initial as the only entry of the stack.
func NewManager(registry *Registry, initial StateID) (*Manager, error) {
	if registry == nil {
		return nil, fmt.Errorf("state: registry is nil")
	}
	if !registry.valid(initial) {
		return nil, fmt.Errorf("%w: initial state %d", ErrUnknownState, int(initial))
	}
	m := &Manager{registry: registry}
	if err := m.SwitchState(initial); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) Registry() *Registry {
	return m.registry
}

// Lookup resolves a state name through the registry.
func (m *Manager) Lookup(name string) (StateID, error) {
	return m.registry.Lookup(name)
}

// SwitchState clears the stack and displays id.
func (m *Manager) SwitchState(id StateID) error {
	if !m.registry.valid(id) {
		return fmt.Errorf("%w: %d", ErrUnknownState, int(id))
	}
	return m.request(func() error {
		screen, err := m.registry.build(id)
		if err != nil {
			return err
		}
		m.stack = append(m.stack[:0], id)
		m.show(screen)
		return nil
	})
}

// PushState puts id on top of the stack and displays it. The screen below
// is torn down, not paused. The new screen is nil when the push was queued.
func (m *Manager) PushState(id StateID) (Screen, error) {
	if !m.registry.valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(id))
	}
	var screen Screen
	err := m.request(func() error {
		built, err := m.registry.build(id)
		if err != nil {
			return err
		}
		m.stack = append(m.stack, id)
		screen = built
		m.show(built)
		return nil
	})
	return screen, err
}

// PopState removes the top of the stack and displays a fresh screen for
// the new top. Popping the last entry is refused.
func (m *Manager) PopState() error {
	return m.request(func() error {
		if len(m.stack) <= 1 {
			log.Printf("state: pop: no screen behind %s", m.String())
			return ErrStackBottom
		}
		screen, err := m.registry.build(m.stack[len(m.stack)-2])
		if err != nil {
			return err
		}
		m.stack = m.stack[:len(m.stack)-1]
		m.show(screen)
		return nil
	})
}

// PopToState pops until id is on top and displays it. When id is already
// on top nothing happens. When id is not on the stack the stack and the
// displayed screen are left untouched.
func (m *Manager) PopToState(id StateID) error {
	return m.request(func() error {
		top, ok := m.Top()
		if ok && top == id {
			return nil
		}
		for i := len(m.stack) - 1; i >= 0; i-- {
			if m.stack[i] != id {
				continue
			}
			screen, err := m.registry.build(id)
			if err != nil {
				return err
			}
			m.stack = m.stack[:i+1]
			m.show(screen)
			return nil
		}
		return fmt.Errorf("%w: %s", ErrStateNotFound, m.registry.Name(id))
	})
}

// Update runs the displayed screen for one tick.
func (m *Manager) Update(dt float64) {
	if m == nil || m.current == nil {
		return
	}
	m.busy++
	m.current.OnUpdateState(dt)
	m.busy--
	m.flush()
}

// Close tears down the displayed screen.
func (m *Manager) Close() {
	if m == nil || m.current == nil {
		return
	}
	m.current.OnExitState()
	m.current = nil
}

// Current returns the displayed screen.
func (m *Manager) Current() Screen {
	if m == nil {
		return nil
	}
	return m.current
}

// Top returns the id on top of the stack.
func (m *Manager) Top() (StateID, bool) {
	if m == nil || len(m.stack) == 0 {
		return 0, false
	}
	return m.stack[len(m.stack)-1], true
}

// Stack returns the ids from bottom to top.
func (m *Manager) Stack() []StateID {
	if m == nil {
		return nil
	}
	out := make([]StateID, len(m.stack))
	copy(out, m.stack)
	return out
}

// String lists the stack from the top down, e.g. "game_over / gameplay /
// main_menu".
func (m *Manager) String() string {
	if m == nil {
		return ""
	}
	names := make([]string, 0, len(m.stack))
	for i := len(m.stack) - 1; i >= 0; i-- {
		names = append(names, m.registry.Name(m.stack[i]))
	}
	return strings.Join(names, " / ")
}

func (m *Manager) request(op func() error) error {
	if m.busy > 0 {
		m.pending = append(m.pending, op)
		return nil
	}
	return op()
}

func (m *Manager) flush() {
	for m.busy == 0 && len(m.pending) > 0 {
		op := m.pending[0]
		m.pending = m.pending[1:]
		if err := op(); err != nil {
			log.Printf("state: queued request: %v", err)
		}
	}
}

// show tears down the current screen and initializes screen in its place.
// The stack must already name screen on top.
func (m *Manager) show(screen Screen) {
	if m.current != nil {
		m.current.OnExitState()
	}
	m.current = screen
	m.busy++
	screen.OnInitializeState(m)
	m.busy--
	m.flush()
}
