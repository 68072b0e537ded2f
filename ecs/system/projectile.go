package system

import (
	"log"

	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/entity"
)

// ProjectileSystem moves, grows and ages projectiles.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem { return &ProjectileSystem{} }

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		t.X += p.Velocity.X * dt
		t.Y += p.Velocity.Y * dt
		if p.GrowthRate != 0 {
			t.ScaleX += p.GrowthRate * dt
			t.ScaleY += p.GrowthRate * dt
		}
		p.Age += dt
		if p.Expired() {
			destroyProjectile(w, e)
		}
	})
}

// destroyProjectile removes a projectile, leaving its drop behind.
func destroyProjectile(w *ecs.World, e ecs.Entity) {
	p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok {
		return
	}
	if p.DropOnDestroy != "" {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if _, err := entity.Spawn(w, p.DropOnDestroy, t.Position()); err != nil {
			log.Printf("projectile: drop: %v", err)
		}
	}
	ecs.DestroyEntity(w, e)
}
