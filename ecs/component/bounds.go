package component

// Bounds is the playable rectangle of a level, centred on the origin.
type Bounds struct {
	Width  float64
	Height float64
}

// Contains reports whether x, y lies inside the rectangle.
func (b *Bounds) Contains(x, y float64) bool {
	if b == nil {
		return true
	}
	return x >= -b.Width/2 && x <= b.Width/2 && y >= -b.Height/2 && y <= b.Height/2
}

var BoundsComponent = NewComponent[Bounds]()
