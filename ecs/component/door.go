package component

// Door teleports the party to OtherX/OtherY when select is pressed while
// a friend stands in it.
type Door struct {
	Locked bool
	OtherX float64
	OtherY float64

	// Occupants are the friends currently overlapping the door.
	Occupants []uint64
}

func (d *Door) Enter(friend uint64) {
	if d == nil {
		return
	}
	for _, o := range d.Occupants {
		if o == friend {
			return
		}
	}
	d.Occupants = append(d.Occupants, friend)
}

func (d *Door) Leave(friend uint64) {
	if d == nil {
		return
	}
	for i, o := range d.Occupants {
		if o == friend {
			d.Occupants = append(d.Occupants[:i], d.Occupants[i+1:]...)
			return
		}
	}
}

func (d *Door) Occupied() bool {
	return d != nil && len(d.Occupants) > 0
}

var DoorComponent = NewComponent[Door]()
