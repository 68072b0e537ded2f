package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
)

const (
	categoryWall uint = 1 << iota
	categoryParty
	categoryEnemy
	categoryLoose
)

const wallThickness = 4.0

// DefaultDamping is the fraction of velocity a body keeps after one second.
const DefaultDamping = 0.15

// PhysicsSystem mirrors physics bodies into a Chipmunk space, steps it and
// copies positions back to transforms. Controllers set velocities; impacts
// and drops apply impulses.
type PhysicsSystem struct {
	space    *cp.Space
	damping  float64
	entities map[ecs.Entity]*bodyInfo
	walls    []*cp.Shape
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(damping float64) *PhysicsSystem {
	if damping <= 0 || damping > 1 {
		damping = DefaultDamping
	}
	return &PhysicsSystem{
		space:    newSpace(damping),
		damping:  damping,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func newSpace(damping float64) *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	space.SetDamping(damping)
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace(ps.damping)
	}

	ps.cleanupEntities(w)
	ps.syncWalls(w)
	ps.syncEntities(w)

	dt := w.Delta()
	if dt > 0 {
		ps.space.Step(dt)
	}

	ps.syncTransforms(w)
	ps.decayKnockback(w, dt)
}

func (ps *PhysicsSystem) syncWalls(w *ecs.World) {
	if len(ps.walls) > 0 {
		return
	}
	e, ok := ecs.First(w, component.BoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, e, component.BoundsComponent.Kind())
	hw, hh := bounds.Width/2, bounds.Height/2
	corners := []cp.Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		shape := cp.NewSegment(ps.space.StaticBody, a, b, wallThickness)
		shape.SetFriction(0)
		shape.SetElasticity(0.2)
		shape.SetFilter(cp.ShapeFilter{Group: 0, Categories: categoryWall, Mask: ^uint(0)})
		ps.space.AddShape(shape)
		ps.walls = append(ps.walls, shape)
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if _, ok := ps.entities[e]; !ok {
			info := ps.createBodyInfo(w, e, t, body)
			ps.entities[e] = info
			body.Body = info.body
			body.Shape = info.shape
		}
		if body.Body == nil || len(body.Pending) == 0 {
			return
		}
		for _, impulse := range body.Pending {
			body.Body.ApplyImpulseAtWorldPoint(impulse, body.Body.Position())
		}
		body.Pending = nil
	})
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, t *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	radius := bodyComp.Radius
	if radius <= 0 {
		radius = 8
	}
	filter := filterFor(w, e)

	if bodyComp.Static {
		shape := cp.NewCircle(ps.space.StaticBody, radius, t.Position())
		shape.SetFriction(bodyComp.Friction)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		return &bodyInfo{shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(t.Position())
	body.SetAngularVelocity(0)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(bodyComp.Friction)
	shape.SetFilter(filter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// filterFor keeps the party and loose drops out of each other's way while
// enemies jostle one another. Everything collides with the walls.
func filterFor(w *ecs.World, e ecs.Entity) cp.ShapeFilter {
	switch {
	case ecs.Has(w, e, component.PartyComponent.Kind()):
		return cp.ShapeFilter{Categories: categoryParty, Mask: categoryWall}
	case ecs.Has(w, e, component.EnemyComponent.Kind()):
		return cp.ShapeFilter{Categories: categoryEnemy, Mask: categoryWall | categoryEnemy}
	default:
		return cp.ShapeFilter{Categories: categoryLoose, Mask: categoryWall}
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.body == nil || info.static {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		t.SetPosition(info.body.Position())
	}
}

func (ps *PhysicsSystem) decayKnockback(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.KnockbackComponent.Kind(), func(e ecs.Entity, kb *component.Knockback) {
		kb.Remaining -= dt
		if kb.Remaining <= 0 {
			ecs.Remove(w, e, component.KnockbackComponent.Kind())
		}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// ApplyKnockback pushes the body of target and suspends its controller for
// a moment.
func ApplyKnockback(w *ecs.World, target ecs.Entity, impulse cp.Vector) bool {
	body, ok := ecs.Get(w, target, component.PhysicsBodyComponent.Kind())
	if !ok || body.Static {
		return false
	}
	body.ApplyImpulse(impulse)
	_ = ecs.Add(w, target, component.KnockbackComponent.Kind(), &component.Knockback{Remaining: component.DefaultKnockbackTime})
	return true
}
