package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are owned by the physics system and stay nil until the
// entity has been added to the space.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Radius   float64
	Mass     float64
	Friction float64
	Static   bool

	// Pending impulses are applied by the physics system before the next
	// step when Body is not yet available.
	Pending []cp.Vector
}

// ApplyImpulse pushes the body at its centre of mass.
func (p *PhysicsBody) ApplyImpulse(impulse cp.Vector) {
	if p == nil {
		return
	}
	if p.Body == nil {
		p.Pending = append(p.Pending, impulse)
		return
	}
	p.Body.ApplyImpulseAtWorldPoint(impulse, p.Body.Position())
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
