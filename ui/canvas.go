package ui

import (
	"errors"
	"fmt"

	"github.com/milk9111/sqwad/prefabs"
)

var (
	ErrNoElement        = errors.New("ui: no such element")
	ErrDuplicateElement = errors.New("ui: duplicate element")
)

// Canvas holds the hideable elements of one screen by name.
type Canvas struct {
	elements []*Hideable
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

// NewCanvasFromSpec builds every element of a screen definition.
func NewCanvasFromSpec(specs []prefabs.HideableSpec) (*Canvas, error) {
	c := NewCanvas()
	for _, spec := range specs {
		h, err := NewHideableFromSpec(spec)
		if err != nil {
			return nil, err
		}
		if err := c.Add(h); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Canvas) Add(h *Hideable) error {
	if h == nil {
		return fmt.Errorf("ui: add nil element")
	}
	if _, err := c.Get(h.Name); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateElement, h.Name)
	}
	c.elements = append(c.elements, h)
	return nil
}

func (c *Canvas) Get(name string) (*Hideable, error) {
	if c != nil {
		for _, h := range c.elements {
			if h.Name == name {
				return h, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoElement, name)
}

func (c *Canvas) Show(name string) error {
	h, err := c.Get(name)
	if err != nil {
		return err
	}
	h.Show()
	return nil
}

func (c *Canvas) Hide(name string) error {
	h, err := c.Get(name)
	if err != nil {
		return err
	}
	h.Hide()
	return nil
}

// Update animates every element and forgets destroyed ones.
func (c *Canvas) Update(dt float64) {
	if c == nil {
		return
	}
	for _, h := range c.elements {
		h.Update(dt)
	}
	kept := c.elements[:0]
	for _, h := range c.elements {
		if h.Destroyed() {
			h.Release()
			continue
		}
		kept = append(kept, h)
	}
	c.elements = kept
}

// Elements returns the live elements in the order they were added.
func (c *Canvas) Elements() []*Hideable {
	if c == nil {
		return nil
	}
	out := make([]*Hideable, len(c.elements))
	copy(out, c.elements)
	return out
}

// Release drops the listeners of every element.
func (c *Canvas) Release() {
	if c == nil {
		return
	}
	for _, h := range c.elements {
		h.Release()
	}
}
