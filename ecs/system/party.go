package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/input"
)

// PartySystem turns the tick's input into party rotation, movement and
// outward fire.
type PartySystem struct{}

func NewPartySystem() *PartySystem { return &PartySystem{} }

func (s *PartySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	in := w.Input()
	dt := w.Delta()

	ecs.ForEach2(w, component.PartyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, party *component.Party, t *component.Transform) {
		if party.Rotate(in.Rotate) {
			reseatFriends(w, party)
			party.Rotated.Emit(in.Rotate)
		}

		move := cp.Vector{X: in.MoveX, Y: in.MoveY}
		if l := math.Hypot(move.X, move.Y); l > 1 {
			move = cp.Vector{X: move.X / l, Y: move.Y / l}
		}
		vel := cp.Vector{X: move.X * party.MoveSpeed, Y: move.Y * party.MoveSpeed}
		if !ecs.Has(w, e, component.KnockbackComponent.Kind()) {
			if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
				body.Body.SetVelocityVector(vel)
			} else {
				t.X += vel.X * dt
				t.Y += vel.Y * dt
			}
		}

		firing := in.Held(input.Fire)
		for _, d := range common.Directions {
			fe := ecs.Entity(party.Friend(d))
			attack, ok := ecs.Get(w, fe, component.AttackComponent.Kind())
			if !ok {
				continue
			}
			attack.Attacking = firing
			attack.Direction = d.Vector(1)
		}
	})
}

// reseatFriends points every friend at the slot it now occupies and starts
// sliding it there.
func reseatFriends(w *ecs.World, party *component.Party) {
	for _, d := range common.Directions {
		fe := ecs.Entity(party.Friend(d))
		friend, ok := ecs.Get(w, fe, component.FriendComponent.Kind())
		if !ok {
			continue
		}
		friend.Direction = d
		friend.Facing = d
		friend.Offset.MoveTo(d.Vector(party.Spread), party.RotateTime)
		if sprite, ok := ecs.Get(w, fe, component.SpriteComponent.Kind()); ok && friend.Sprites[d] != "" {
			sprite.Clip = friend.Sprites[d]
		}
	}
}
