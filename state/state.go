// Package state keeps the stack of game screens. Only the screen on top of
// the stack exists; every other entry is just an id that is rebuilt from
// scratch when it becomes the top again.
package state

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownState   = errors.New("state: unknown state")
	ErrDuplicateState = errors.New("state: duplicate state name")
	ErrStackBottom    = errors.New("state: no state behind the current one")
	ErrStateNotFound  = errors.New("state: state not on the stack")
)

// StateID identifies a registered state. Ids are handed out by a Registry
// when states are registered at load time.
type StateID int

// Screen is one game screen. A new Screen is built every time its state is
// displayed and discarded when another state is displayed.
type Screen interface {
	OnInitializeState(m *Manager)
	OnUpdateState(dt float64)
	OnExitState()
}

// Child is a sub-component of a screen that follows the screen's lifecycle.
type Child interface {
	OnInitializeState(master Screen)
	OnUpdateState(dt float64)
	OnExitState()
}

// Factory builds a fresh screen.
type Factory func() Screen

// Registry maps state names to ids and ids to screen factories.
type Registry struct {
	names     []string
	factories []Factory
	ids       map[string]StateID
}

func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]StateID)}
}

// Register adds a state and returns its id.
func (r *Registry) Register(name string, factory Factory) (StateID, error) {
	if name == "" || factory == nil {
		return 0, fmt.Errorf("state: register %q: name and factory are required", name)
	}
	if _, ok := r.ids[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateState, name)
	}
	id := StateID(len(r.names))
	r.names = append(r.names, name)
	r.factories = append(r.factories, factory)
	r.ids[name] = id
	return id, nil
}

// Lookup resolves a state name.
func (r *Registry) Lookup(name string) (StateID, error) {
	id, ok := r.ids[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
	return id, nil
}

// Name returns the registered name of id.
func (r *Registry) Name(id StateID) string {
	if !r.valid(id) {
		return fmt.Sprintf("state(%d)", int(id))
	}
	return r.names[id]
}

func (r *Registry) Len() int {
	return len(r.names)
}

func (r *Registry) valid(id StateID) bool {
	return r != nil && id >= 0 && int(id) < len(r.names)
}

func (r *Registry) build(id StateID) (Screen, error) {
	if !r.valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(id))
	}
	s := r.factories[id]()
	if s == nil {
		return nil, fmt.Errorf("state: factory for %q returned nil", r.names[id])
	}
	return s, nil
}
