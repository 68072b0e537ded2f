// Package ui holds the headless side of the interface: animated hideable
// panels, button focus and the friend wheel. Positions are in screen space,
// y down.
package ui

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs/signal"
	"github.com/milk9111/sqwad/prefabs"
)

// HideDirection is where an element floats to while hiding.
type HideDirection int

const (
	HideDown HideDirection = iota
	HideUp
	HideLeft
	HideRight
	HideNone
)

func ParseHideDirection(s string) (HideDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "down":
		return HideDown, nil
	case "up":
		return HideUp, nil
	case "left":
		return HideLeft, nil
	case "right":
		return HideRight, nil
	case "none":
		return HideNone, nil
	}
	return 0, fmt.Errorf("ui: unknown hide direction %q", s)
}

func (d HideDirection) vector() cp.Vector {
	switch d {
	case HideDown:
		return cp.Vector{Y: 1}
	case HideUp:
		return cp.Vector{Y: -1}
	case HideLeft:
		return cp.Vector{X: -1}
	case HideRight:
		return cp.Vector{X: 1}
	}
	return cp.Vector{}
}

// HideAction is what happens to an element once it is fully hidden.
type HideAction int

const (
	HideActionDeactivate HideAction = iota
	HideActionNone
	HideActionDestroy
)

func ParseHideAction(s string) (HideAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deactivate":
		return HideActionDeactivate, nil
	case "none":
		return HideActionNone, nil
	case "destroy":
		return HideActionDestroy, nil
	}
	return 0, fmt.Errorf("ui: unknown hide action %q", s)
}

const (
	DefaultHideDistance = 50.0
	DefaultHideRate     = 20.0
)

// Hideable is a panel that slides and fades between a shown and a hidden
// position. Visibility runs from 0 (hidden) to 1 (shown) at Rate per
// second; the position eases with the square of the visibility.
type Hideable struct {
	Name      string
	Direction HideDirection
	Distance  float64
	Rate      float64
	Fade      bool
	OnHide    HideAction
	// BlocksInputWhenHidden keeps a hidden element catching pointer input.
	BlocksInputWhenHidden bool

	BeginHide signal.Signal[*Hideable]
	Hidden    signal.Signal[*Hideable]
	BeginShow signal.Signal[*Hideable]
	Shown     signal.Signal[*Hideable]

	shown       bool
	a           float64
	alpha       float64
	pos         cp.Vector
	shownPos    cp.Vector
	hiddenPos   cp.Vector
	active      bool
	destroyed   bool
	blocksInput bool
}

// NewHideable returns a shown element at pos that hides downwards.
func NewHideable(name string, pos cp.Vector) *Hideable {
	h := &Hideable{
		Name:                  name,
		Direction:             HideDown,
		Distance:              DefaultHideDistance,
		Rate:                  DefaultHideRate,
		Fade:                  true,
		OnHide:                HideActionDeactivate,
		BlocksInputWhenHidden: true,
		shown:                 true,
		a:                     1,
		alpha:                 1,
		active:                true,
		blocksInput:           true,
	}
	h.Reposition(pos)
	return h
}

// NewHideableFromSpec builds an element from its screen definition. Zero
// distance and rate fall back to the defaults.
func NewHideableFromSpec(spec prefabs.HideableSpec) (*Hideable, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("ui: hideable without a name")
	}
	dir, err := ParseHideDirection(spec.Direction)
	if err != nil {
		return nil, err
	}
	action, err := ParseHideAction(spec.OnHide)
	if err != nil {
		return nil, err
	}
	h := NewHideable(spec.Name, cp.Vector{X: spec.X, Y: spec.Y})
	h.Direction = dir
	h.OnHide = action
	h.Fade = spec.Fade
	h.BlocksInputWhenHidden = spec.BlocksInput
	if spec.Distance > 0 {
		h.Distance = spec.Distance
	}
	if spec.Rate > 0 {
		h.Rate = spec.Rate
	}
	h.Reposition(cp.Vector{X: spec.X, Y: spec.Y})
	if spec.StartsHidden {
		h.HideImmediate()
	}
	return h, nil
}

// Reposition moves the element and recomputes its shown and hidden
// positions from the current direction and distance.
func (h *Hideable) Reposition(pos cp.Vector) {
	if h == nil {
		return
	}
	h.shownPos = pos
	h.hiddenPos = pos.Add(h.Direction.vector().Mult(h.Distance))
	h.pos = pos
}

// Update advances the animation. Inactive elements do not animate.
func (h *Hideable) Update(dt float64) {
	if h == nil || !h.active {
		return
	}
	step := h.Rate * dt
	if h.shown && h.a < 1 {
		h.a += step
		if h.a >= 1 {
			h.a = 1
			h.arriveShown()
		}
	} else if !h.shown && h.a > 0 {
		h.a -= step
		if h.a <= 0 {
			h.a = 0
			h.arriveHidden()
		}
	}
	h.pos = common.LerpVector(h.hiddenPos, h.shownPos, h.a*h.a)
	if h.Fade {
		h.alpha = h.a
	} else {
		h.alpha = 1
	}
}

// Hide starts hiding. An element that is already fully hidden reports
// Hidden at once.
func (h *Hideable) Hide() {
	if h == nil {
		return
	}
	h.shown = false
	h.BeginHide.Emit(h)
	if h.a <= 0 {
		h.arriveHidden()
	}
}

// Show starts showing. An element that is already fully shown reports
// Shown at once.
func (h *Hideable) Show() {
	if h == nil {
		return
	}
	h.shown = true
	h.beginShow()
	if h.a >= 1 {
		h.arriveShown()
	}
}

func (h *Hideable) HideImmediate() {
	if h == nil {
		return
	}
	h.shown = false
	h.a = 0
	h.alpha = 0
	h.pos = h.hiddenPos
	h.BeginHide.Emit(h)
	h.arriveHidden()
}

func (h *Hideable) ShowImmediate() {
	if h == nil {
		return
	}
	h.shown = true
	h.a = 1
	h.pos = h.shownPos
	h.beginShow()
	h.arriveShown()
}

func (h *Hideable) Toggle() {
	if h == nil {
		return
	}
	if h.shown {
		h.Hide()
	} else {
		h.Show()
	}
}

func (h *Hideable) SetShown(shown bool) {
	if shown {
		h.Show()
	} else {
		h.Hide()
	}
}

func (h *Hideable) beginShow() {
	h.BeginShow.Emit(h)
	if !h.destroyed {
		h.active = true
	}
	h.blocksInput = true
}

func (h *Hideable) arriveShown() {
	h.Shown.Emit(h)
}

func (h *Hideable) arriveHidden() {
	h.Hidden.Emit(h)
	switch h.OnHide {
	case HideActionDeactivate:
		h.active = false
	case HideActionDestroy:
		h.active = false
		h.destroyed = true
	}
	h.blocksInput = h.BlocksInputWhenHidden
}

// IsShown reports whether the element is shown or on its way there.
func (h *Hideable) IsShown() bool { return h != nil && h.shown }

// FullyShown reports whether the element is shown and done animating.
func (h *Hideable) FullyShown() bool { return h != nil && h.shown && h.a >= 1 }

// FullyHidden reports whether the element is hidden and done animating.
func (h *Hideable) FullyHidden() bool { return h != nil && !h.shown && h.a <= 0 }

// Visibility is the animation parameter in [0, 1].
func (h *Hideable) Visibility() float64 { return h.a }

func (h *Hideable) Alpha() float64 { return h.alpha }

func (h *Hideable) Position() cp.Vector { return h.pos }

func (h *Hideable) Active() bool { return h.active }

func (h *Hideable) Destroyed() bool { return h.destroyed }

// BlocksInput reports whether the element currently catches pointer input.
func (h *Hideable) BlocksInput() bool { return h.blocksInput && !h.destroyed }

// Release drops every listener.
func (h *Hideable) Release() {
	if h == nil {
		return
	}
	h.BeginHide.Reset()
	h.Hidden.Reset()
	h.BeginShow.Reset()
	h.Shown.Reset()
}
