package ui

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hideLog struct {
	events []string
}

func (l *hideLog) watch(h *Hideable) {
	h.BeginHide.Connect(func(*Hideable) { l.events = append(l.events, "begin-hide") })
	h.Hidden.Connect(func(*Hideable) { l.events = append(l.events, "hidden") })
	h.BeginShow.Connect(func(*Hideable) { l.events = append(l.events, "begin-show") })
	h.Shown.Connect(func(*Hideable) { l.events = append(l.events, "shown") })
}

func TestNewHideableDefaults(t *testing.T) {
	h := NewHideable("panel", cp.Vector{X: 10, Y: 20})

	assert.True(t, h.IsShown())
	assert.True(t, h.FullyShown())
	assert.True(t, h.Active())
	assert.True(t, h.Fade)
	assert.True(t, h.BlocksInputWhenHidden)
	assert.Equal(t, HideDown, h.Direction)
	assert.Equal(t, HideActionDeactivate, h.OnHide)
	assert.Equal(t, DefaultHideDistance, h.Distance)
	assert.Equal(t, DefaultHideRate, h.Rate)
	assert.Equal(t, 1.0, h.Alpha())
	assert.Equal(t, cp.Vector{X: 10, Y: 20}, h.Position())
}

func TestHideAnimatesThenDeactivates(t *testing.T) {
	h := NewHideable("panel", cp.Vector{})
	h.Rate = 2
	var log hideLog
	log.watch(h)

	h.Hide()
	assert.Equal(t, []string{"begin-hide"}, log.events)
	assert.False(t, h.IsShown())

	h.Update(0.25)
	assert.InDelta(t, 0.5, h.Visibility(), 1e-9)
	assert.InDelta(t, 0.5, h.Alpha(), 1e-9)
	// Position eases with the square of the visibility.
	assert.InDelta(t, 50*0.75, h.Position().Y, 1e-9)
	assert.True(t, h.Active())

	h.Update(0.5)
	assert.Equal(t, []string{"begin-hide", "hidden"}, log.events)
	assert.True(t, h.FullyHidden())
	assert.False(t, h.Active())
	assert.Equal(t, cp.Vector{Y: 50}, h.Position())

	// Inactive elements stay put.
	h.Update(1)
	assert.Equal(t, []string{"begin-hide", "hidden"}, log.events)
}

func TestShowReactivates(t *testing.T) {
	h := NewHideable("panel", cp.Vector{})
	h.HideImmediate()
	require.False(t, h.Active())
	var log hideLog
	log.watch(h)

	h.Show()
	assert.True(t, h.Active())
	assert.True(t, h.BlocksInput())
	h.Update(1)
	assert.Equal(t, []string{"begin-show", "shown"}, log.events)
	assert.True(t, h.FullyShown())
	assert.Equal(t, cp.Vector{}, h.Position())
}

func TestHideWhenAlreadyHidden(t *testing.T) {
	h := NewHideable("panel", cp.Vector{})
	h.HideImmediate()
	var log hideLog
	log.watch(h)

	h.Hide()
	assert.Equal(t, []string{"begin-hide", "hidden"}, log.events)

	log.events = nil
	h.ShowImmediate()
	assert.Equal(t, []string{"begin-show", "shown"}, log.events)

	log.events = nil
	h.Show()
	assert.Equal(t, []string{"begin-show", "shown"}, log.events)
}

func TestHideActions(t *testing.T) {
	tests := []struct {
		name          string
		action        HideAction
		blocks        bool
		wantActive    bool
		wantDestroyed bool
		wantBlocks    bool
	}{
		{name: "deactivate", action: HideActionDeactivate, blocks: true, wantBlocks: true},
		{name: "none", action: HideActionNone, wantActive: true},
		{name: "destroy", action: HideActionDestroy, blocks: true, wantDestroyed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHideable("panel", cp.Vector{})
			h.OnHide = tt.action
			h.BlocksInputWhenHidden = tt.blocks

			h.HideImmediate()

			assert.Equal(t, tt.wantActive, h.Active())
			assert.Equal(t, tt.wantDestroyed, h.Destroyed())
			assert.Equal(t, tt.wantBlocks, h.BlocksInput())
		})
	}
}

func TestHideDirections(t *testing.T) {
	tests := []struct {
		dir  string
		want cp.Vector
	}{
		{dir: "", want: cp.Vector{X: 100, Y: 150}},
		{dir: "up", want: cp.Vector{X: 100, Y: 50}},
		{dir: "left", want: cp.Vector{X: 50, Y: 100}},
		{dir: "right", want: cp.Vector{X: 150, Y: 100}},
		{dir: "none", want: cp.Vector{X: 100, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			h, err := NewHideableFromSpec(prefabs.HideableSpec{Name: "p", X: 100, Y: 100, Direction: tt.dir})
			require.NoError(t, err)

			h.HideImmediate()
			assert.Equal(t, tt.want, h.Position())
		})
	}
}

func TestNewHideableFromSpec(t *testing.T) {
	h, err := NewHideableFromSpec(prefabs.HideableSpec{
		Name:         "controls",
		Direction:    "up",
		Distance:     80,
		Rate:         4,
		StartsHidden: true,
		OnHide:       "none",
	})
	require.NoError(t, err)

	assert.True(t, h.FullyHidden())
	assert.Equal(t, 0.0, h.Alpha())
	assert.False(t, h.Fade)
	assert.False(t, h.BlocksInput())
	assert.Equal(t, 80.0, h.Distance)
	assert.Equal(t, 4.0, h.Rate)
	assert.Equal(t, cp.Vector{Y: -80}, h.Position())

	h.Show()
	h.Update(0.125)
	assert.InDelta(t, 0.5, h.Visibility(), 1e-9)
	// Without fade the element stays opaque.
	assert.Equal(t, 1.0, h.Alpha())

	_, err = NewHideableFromSpec(prefabs.HideableSpec{Name: "p", Direction: "diagonal"})
	assert.Error(t, err)
	_, err = NewHideableFromSpec(prefabs.HideableSpec{Name: "p", OnHide: "explode"})
	assert.Error(t, err)
	_, err = NewHideableFromSpec(prefabs.HideableSpec{})
	assert.Error(t, err)
}

func TestToggle(t *testing.T) {
	h := NewHideable("panel", cp.Vector{})
	h.Toggle()
	assert.False(t, h.IsShown())
	h.Toggle()
	assert.True(t, h.IsShown())
	h.SetShown(false)
	assert.False(t, h.IsShown())
}

func TestRepositionMovesHiddenPosition(t *testing.T) {
	h := NewHideable("panel", cp.Vector{})
	h.Reposition(cp.Vector{X: 5, Y: 5})
	h.HideImmediate()
	assert.Equal(t, cp.Vector{X: 5, Y: 55}, h.Position())
}
