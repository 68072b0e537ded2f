package component

import "github.com/jakecoffman/cp"

type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Position returns the transform's location as a vector.
func (t *Transform) Position() cp.Vector {
	if t == nil {
		return cp.Vector{}
	}
	return cp.Vector{X: t.X, Y: t.Y}
}

func (t *Transform) SetPosition(v cp.Vector) {
	if t == nil {
		return
	}
	t.X = v.X
	t.Y = v.Y
}

var TransformComponent = NewComponent[Transform]()
