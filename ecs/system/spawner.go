package system

import (
	"log"

	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/entity"
)

// SpawnerSystem releases spawns on a fixed interval, catching up when a
// tick spans several intervals.
type SpawnerSystem struct{}

func NewSpawnerSystem() *SpawnerSystem { return &SpawnerSystem{} }

func (s *SpawnerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w, component.SpawnerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sp *component.Spawner, t *component.Transform) {
		if !sp.Triggered || sp.Interval <= 0 {
			return
		}
		sp.Timer += dt
		for sp.Timer >= sp.Interval {
			sp.Timer -= sp.Interval
			if _, err := entity.Spawn(w, sp.Prefab, t.Position()); err != nil {
				log.Printf("spawner: %v", err)
				ecs.DestroyEntity(w, e)
				return
			}
			if sp.Infinite {
				continue
			}
			sp.Remaining--
			if sp.Remaining <= 0 {
				ecs.DestroyEntity(w, e)
				return
			}
		}
	})
}
