package component

// Collider is a circular trigger volume centred on the transform plus
// offset. Overlap enter/exit events are produced for every pair of
// colliders.
type Collider struct {
	Radius  float64
	OffsetX float64
	OffsetY float64
}

var ColliderComponent = NewComponent[Collider]()
