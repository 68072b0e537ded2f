package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
)

// EnemyAISystem periodically picks the nearest live friend and chases it.
type EnemyAISystem struct{}

func NewEnemyAISystem() *EnemyAISystem { return &EnemyAISystem{} }

func (s *EnemyAISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		if ecs.Has(w, e, component.DeadComponent.Kind()) {
			return
		}

		if enemy.Target != 0 && !liveFriend(w, ecs.Entity(enemy.Target)) {
			enemy.Target = 0
		}

		if enemy.RetargetTimer <= 0 {
			target, _ := NearestFriend(w, t.Position())
			enemy.Target = uint64(target)
			enemy.RetargetTimer = enemy.RetargetInterval
		}
		enemy.RetargetTimer -= dt

		attack, hasAttack := ecs.Get(w, e, component.AttackComponent.Kind())
		if hasAttack {
			attack.Attacking = true
		}

		var vel cp.Vector
		if enemy.Target != 0 {
			targetT, _ := ecs.Get(w, ecs.Entity(enemy.Target), component.TransformComponent.Kind())
			dir := targetT.Position().Sub(t.Position())
			n := common.Normalize(dir)
			vel = cp.Vector{X: n.X * enemy.MoveSpeed, Y: n.Y * enemy.MoveSpeed}
			if hasAttack {
				attack.Direction = dir
			}
		}

		if ecs.Has(w, e, component.KnockbackComponent.Kind()) {
			return
		}
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			if body.Body != nil {
				body.Body.SetVelocityVector(vel)
			}
			return
		}
		t.X += vel.X * dt
		t.Y += vel.Y * dt
	})
}

// NearestFriend returns the live friend closest to pos. Ties go to the
// friend visited first. It returns false when no friend is alive.
func NearestFriend(w *ecs.World, pos cp.Vector) (ecs.Entity, bool) {
	var (
		best     ecs.Entity
		bestDist = math.Inf(1)
		found    bool
	)
	ecs.ForEach2(w, component.FriendComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Friend, t *component.Transform) {
		if !liveFriend(w, e) {
			return
		}
		d := pos.Distance(t.Position())
		if d < bestDist {
			best, bestDist, found = e, d, true
		}
	})
	return best, found
}

func liveFriend(w *ecs.World, e ecs.Entity) bool {
	if !ecs.Has(w, e, component.FriendComponent.Kind()) || ecs.Has(w, e, component.DeadComponent.Kind()) {
		return false
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Dead() {
		return false
	}
	return true
}
