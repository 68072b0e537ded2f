package system

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/entity"
)

// AttackSystem accumulates attack cooldowns and fires volleys.
type AttackSystem struct{}

func NewAttackSystem() *AttackSystem { return &AttackSystem{} }

func (s *AttackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w, component.AttackComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, attack *component.Attack, t *component.Transform) {
		if ecs.Has(w, e, component.DeadComponent.Kind()) {
			return
		}
		if !attack.Tick(dt) {
			return
		}

		side := component.SideNeutral
		if f, ok := ecs.Get(w, e, component.FactionComponent.Kind()); ok {
			side = f.Side
		}

		fired := 0
		for _, dir := range attack.Volley() {
			pos := t.Position().Add(dir.Mult(attack.SpawnOffset))
			if _, err := FireProjectile(w, attack.Projectile, pos, dir, side); err != nil {
				log.Printf("attack: entity=%s: %v", e, err)
				break
			}
			fired++
		}
		if fired == 0 {
			return
		}

		if audio, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
			audio.Request(attack.Sound)
		}
		if stats, ok := worldStats(w); ok {
			stats.Shots += fired
		}
	})
}

// FireProjectile spawns a projectile prefab at pos, launches it along dir
// and tags it with the shooter's side.
func FireProjectile(w *ecs.World, prefab string, pos, dir cp.Vector, side component.Side) (ecs.Entity, error) {
	pe, err := entity.Spawn(w, prefab, pos)
	if err != nil {
		return 0, err
	}
	proj, ok := ecs.Get(w, pe, component.ProjectileComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, pe)
		return 0, fmt.Errorf("attack: prefab %q has no projectile component", prefab)
	}
	angle := proj.Fire(dir)
	if t, ok := ecs.Get(w, pe, component.TransformComponent.Kind()); ok {
		t.Rotation = angle
	}
	if err := ecs.Add(w, pe, component.FactionComponent.Kind(), &component.Faction{Side: side}); err != nil {
		ecs.DestroyEntity(w, pe)
		return 0, err
	}
	return pe, nil
}

func worldStats(w *ecs.World) (*component.Stats, bool) {
	e, ok := ecs.First(w, component.StatsComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.StatsComponent.Kind())
}
