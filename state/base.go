package state

import "fmt"

type namedChild struct {
	name  string
	child Child
}

// Base carries what every screen shares: its manager and its children.
// Screens embed it and call Initialize from their own OnInitializeState.
type Base struct {
	manager  *Manager
	children []namedChild
}

// AddChild declares a child. Children are initialized, updated and exited
// in declaration order.
func (b *Base) AddChild(name string, c Child) error {
	if c == nil {
		return fmt.Errorf("state: child %q is nil", name)
	}
	for _, nc := range b.children {
		if nc.name == name {
			return fmt.Errorf("state: duplicate child %q", name)
		}
	}
	b.children = append(b.children, namedChild{name: name, child: c})
	return nil
}

// Child returns the child declared under name.
func (b *Base) Child(name string) (Child, bool) {
	for _, nc := range b.children {
		if nc.name == name {
			return nc.child, true
		}
	}
	return nil, false
}

// Initialize attaches the screen to m and initializes every child with
// master as their parent screen.
func (b *Base) Initialize(m *Manager, master Screen) {
	b.manager = m
	for _, nc := range b.children {
		nc.child.OnInitializeState(master)
	}
}

func (b *Base) OnInitializeState(m *Manager) {
	b.manager = m
}

func (b *Base) OnUpdateState(dt float64) {
	for _, nc := range b.children {
		nc.child.OnUpdateState(dt)
	}
}

func (b *Base) OnExitState() {
	for _, nc := range b.children {
		nc.child.OnExitState()
	}
}

func (b *Base) Manager() *Manager {
	return b.manager
}

// SwitchState, PushState, PopState and PopToState forward to the manager.

func (b *Base) SwitchState(id StateID) error {
	if b.manager == nil {
		return fmt.Errorf("state: screen is not attached")
	}
	return b.manager.SwitchState(id)
}

func (b *Base) PushState(id StateID) error {
	if b.manager == nil {
		return fmt.Errorf("state: screen is not attached")
	}
	_, err := b.manager.PushState(id)
	return err
}

func (b *Base) PopState() error {
	if b.manager == nil {
		return fmt.Errorf("state: screen is not attached")
	}
	return b.manager.PopState()
}

func (b *Base) PopToState(id StateID) error {
	if b.manager == nil {
		return fmt.Errorf("state: screen is not attached")
	}
	return b.manager.PopToState(id)
}
