// Package input holds the per-tick input snapshot handed to the simulation.
// Front-ends poll their devices and fill a State; nothing in the core reads
// devices directly.
package input

// Button is a named digital button.
type Button uint8

const (
	Select Button = iota
	Cancel
	Fire
	Up
	Down
	buttonCount
)

func (b Button) String() string {
	switch b {
	case Select:
		return "select"
	case Cancel:
		return "cancel"
	case Fire:
		return "fire"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// ParseButton maps a button name to its value.
func ParseButton(name string) (Button, bool) {
	for b := Button(0); b < buttonCount; b++ {
		if b.String() == name {
			return b, true
		}
	}
	return 0, false
}

// Rotation is a discrete party rotation request.
type Rotation int8

const (
	RotateNone  Rotation = 0
	RotateLeft  Rotation = -1
	RotateRight Rotation = 1
)

// State is one tick of input.
type State struct {
	MoveX float64
	MoveY float64

	// RotateAxis is the raw rotate axis in [-1, 1]; Rotate is the edge
	// detected request derived from it by a RotateDetector.
	RotateAxis float64
	Rotate     Rotation

	PointerX float64
	PointerY float64

	held    [buttonCount]bool
	pressed [buttonCount]bool
}

// SetButton records the held state of b and whether it went down this tick.
func (s *State) SetButton(b Button, held, justPressed bool) {
	if b >= buttonCount {
		return
	}
	s.held[b] = held
	s.pressed[b] = justPressed
}

// Held reports whether b is down.
func (s State) Held(b Button) bool {
	return b < buttonCount && s.held[b]
}

// Pressed reports whether b went down this tick.
func (s State) Pressed(b Button) bool {
	return b < buttonCount && s.pressed[b]
}
