package component

import (
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs/signal"
	"github.com/milk9111/sqwad/input"
)

// Party holds four friend slots indexed by direction. A zero slot is empty.
type Party struct {
	Slots [4]uint64

	Spread     float64
	RotateTime float64
	MoveSpeed  float64

	Rotated  signal.Signal[input.Rotation]
	Defeated signal.Signal[struct{}]

	// Lost is set once Defeated has been emitted.
	Lost bool
}

// Friend returns the friend in the slot facing d.
func (p *Party) Friend(d common.Direction) uint64 {
	if p == nil || !d.Valid() {
		return 0
	}
	return p.Slots[d]
}

// RotateLeft turns the party counter-clockwise: the friend facing east now
// faces north, south moves to east, west to south and north to west.
func (p *Party) RotateLeft() {
	if p == nil {
		return
	}
	n, e, s, w := p.Slots[common.North], p.Slots[common.East], p.Slots[common.South], p.Slots[common.West]
	p.Slots[common.North] = e
	p.Slots[common.East] = s
	p.Slots[common.South] = w
	p.Slots[common.West] = n
}

// RotateRight is the inverse of RotateLeft.
func (p *Party) RotateRight() {
	if p == nil {
		return
	}
	n, e, s, w := p.Slots[common.North], p.Slots[common.East], p.Slots[common.South], p.Slots[common.West]
	p.Slots[common.North] = w
	p.Slots[common.East] = n
	p.Slots[common.South] = e
	p.Slots[common.West] = s
}

// Rotate applies r and reports whether anything moved.
func (p *Party) Rotate(r input.Rotation) bool {
	switch r {
	case input.RotateLeft:
		p.RotateLeft()
	case input.RotateRight:
		p.RotateRight()
	default:
		return false
	}
	return p != nil
}

// Vacate empties the slot holding friend.
func (p *Party) Vacate(friend uint64) (common.Direction, bool) {
	if p == nil || friend == 0 {
		return 0, false
	}
	for _, d := range common.Directions {
		if p.Slots[d] == friend {
			p.Slots[d] = 0
			return d, true
		}
	}
	return 0, false
}

// Empty reports whether every slot is vacant.
func (p *Party) Empty() bool {
	if p == nil {
		return true
	}
	for _, f := range p.Slots {
		if f != 0 {
			return false
		}
	}
	return true
}

func (p *Party) Release() {
	if p == nil {
		return
	}
	p.Rotated.Reset()
	p.Defeated.Reset()
}

var PartyComponent = NewComponent[Party]()
