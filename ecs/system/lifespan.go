package system

import (
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
)

// LifeSpanSystem ages LifeSpan components and destroys entities whose time
// is up.
type LifeSpanSystem struct{}

func NewLifeSpanSystem() *LifeSpanSystem {
	return &LifeSpanSystem{}
}

func (s *LifeSpanSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.LifeSpanComponent.Kind(), func(e ecs.Entity, ls *component.LifeSpan) {
		ls.Age += dt
		if ls.Age >= ls.Seconds {
			ecs.DestroyEntity(w, e)
		}
	})
}
