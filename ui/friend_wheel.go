package ui

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/input"
	"github.com/milk9111/sqwad/prefabs"
)

const (
	DefaultWheelSpread     = 24.0
	DefaultWheelRotateTime = 0.12
)

// WheelButton is one friend's marker on the wheel. Its colour follows the
// direction it faces; its fill is that friend's remaining health.
type WheelButton struct {
	Index  int
	Facing common.Direction
	Color  color.NRGBA
	Fill   float64

	lerp common.Lerper
}

// Offset is the button's position relative to the wheel centre, y down.
func (b *WheelButton) Offset() cp.Vector { return b.lerp.Position }

// Moving reports whether the button is still sliding to its slot.
func (b *WheelButton) Moving() bool { return b.lerp.Active() }

// FriendWheel mirrors the party's formation in the HUD.
type FriendWheel struct {
	Center     cp.Vector
	Spread     float64
	RotateTime float64

	colors  [4]color.NRGBA
	slots   [4]*WheelButton
	buttons [4]*WheelButton
}

// NewFriendWheel places button i in direction i. Missing colours are white.
func NewFriendWheel(spec prefabs.FriendWheelSpec) (*FriendWheel, error) {
	w := &FriendWheel{
		Center:     cp.Vector{X: spec.X, Y: spec.Y},
		Spread:     spec.Spread,
		RotateTime: spec.RotateTime,
	}
	if w.Spread <= 0 {
		w.Spread = DefaultWheelSpread
	}
	if w.RotateTime <= 0 {
		w.RotateTime = DefaultWheelRotateTime
	}
	for i := range w.colors {
		w.colors[i] = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	for name, c := range spec.Colors {
		d, err := common.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("friend wheel colour: %w", err)
		}
		if c != nil {
			w.colors[d] = c.NRGBA
		}
	}
	for _, d := range common.Directions {
		b := &WheelButton{Index: int(d), Facing: d, Color: w.colors[d], Fill: 1}
		b.lerp.Position = w.slotOffset(d)
		w.slots[d] = b
		w.buttons[d] = b
	}
	return w, nil
}

// slotOffset flips the world's north-up vector into screen space.
func (w *FriendWheel) slotOffset(d common.Direction) cp.Vector {
	v := d.Vector(w.Spread)
	return cp.Vector{X: v.X, Y: -v.Y}
}

// Rotate permutes the buttons the same way the party permutes its slots.
func (w *FriendWheel) Rotate(r input.Rotation) bool {
	var next [4]*WheelButton
	switch r {
	case input.RotateLeft:
		for _, d := range common.Directions {
			next[d] = w.slots[d.Right()]
		}
	case input.RotateRight:
		for _, d := range common.Directions {
			next[d] = w.slots[d.Left()]
		}
	default:
		return false
	}
	w.slots = next
	for _, d := range common.Directions {
		b := w.slots[d]
		b.Facing = d
		b.Color = w.colors[d]
		b.lerp.MoveTo(w.slotOffset(d), w.RotateTime)
	}
	return true
}

// Slot returns the button currently facing d.
func (w *FriendWheel) Slot(d common.Direction) *WheelButton {
	if w == nil || !d.Valid() {
		return nil
	}
	return w.slots[d]
}

// Button returns the button created for direction i, wherever it faces now.
func (w *FriendWheel) Button(i int) *WheelButton {
	if w == nil || i < 0 || i >= len(w.buttons) {
		return nil
	}
	return w.buttons[i]
}

// SetFill sets the fill of the button facing d, clamped to [0, 1].
func (w *FriendWheel) SetFill(d common.Direction, fill float64) {
	b := w.Slot(d)
	if b == nil {
		return
	}
	b.Fill = min(max(fill, 0), 1)
}

func (w *FriendWheel) Update(dt float64) {
	if w == nil {
		return
	}
	for _, b := range w.buttons {
		b.lerp.Update(dt)
	}
}
