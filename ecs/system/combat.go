package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
)

// CombatSystem resolves projectile hits, projectile reflection and enemies
// that die on contact with a friend.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Peek(ecs.EventOverlapEnter) {
		if !ecs.IsAlive(w, evt.Entity) || !ecs.IsAlive(w, evt.Other) {
			continue
		}
		if p, ok := ecs.Get(w, evt.Entity, component.ProjectileComponent.Kind()); ok {
			s.resolveProjectile(w, evt.Entity, p, evt.Other)
			continue
		}
		if enemy, ok := ecs.Get(w, evt.Entity, component.EnemyComponent.Kind()); ok && enemy.DiesOnContact {
			if liveFriend(w, evt.Other) {
				_ = ecs.Add(w, evt.Entity, component.DeadComponent.Kind(), &component.Dead{})
			}
		}
	}
}

func (s *CombatSystem) resolveProjectile(w *ecs.World, e ecs.Entity, p *component.Projectile, other ecs.Entity) {
	side := sideOf(w, e)
	otherSide := sideOf(w, other)
	if !component.Hostile(side, otherSide) {
		return
	}

	if incoming, ok := ecs.Get(w, other, component.ProjectileComponent.Kind()); ok {
		if p.Reflects {
			reflectProjectile(w, other, incoming, side)
		}
		return
	}

	health, ok := ecs.Get(w, other, component.HealthComponent.Kind())
	if !ok || ecs.Has(w, other, component.DeadComponent.Kind()) {
		return
	}
	health.Damage(p.Damage)
	s.push(w, e, p, other)

	if !p.Penetrating {
		destroyProjectile(w, e)
	}
}

// reflectProjectile turns a projectile around and hands it to side.
func reflectProjectile(w *ecs.World, e ecs.Entity, p *component.Projectile, side component.Side) {
	p.Velocity = p.Velocity.Neg()
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.Rotation = math.Atan2(p.Velocity.Y, p.Velocity.X)
	}
	_ = ecs.Add(w, e, component.FactionComponent.Kind(), &component.Faction{Side: side})
}

// push applies the impact force to the target's body, or to its party's
// body when the target is a friend.
func (s *CombatSystem) push(w *ecs.World, e ecs.Entity, p *component.Projectile, target ecs.Entity) {
	if p.Force == 0 {
		return
	}
	var dir cp.Vector
	if p.Explosive {
		from, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		to, _ := ecs.Get(w, target, component.TransformComponent.Kind())
		dir = common.Normalize(to.Position().Sub(from.Position()))
	} else {
		dir = common.Normalize(p.Velocity)
	}
	if common.IsZero(dir) {
		return
	}
	ApplyKnockback(w, bodyOwner(w, target), dir.Mult(p.Force))
}

func bodyOwner(w *ecs.World, e ecs.Entity) ecs.Entity {
	if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
		return e
	}
	if friend, ok := ecs.Get(w, e, component.FriendComponent.Kind()); ok {
		return ecs.Entity(friend.Party)
	}
	return e
}

func sideOf(w *ecs.World, e ecs.Entity) component.Side {
	if f, ok := ecs.Get(w, e, component.FactionComponent.Kind()); ok {
		return f.Side
	}
	return component.SideNeutral
}
