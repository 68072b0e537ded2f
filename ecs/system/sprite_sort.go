package system

import (
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
)

// SpriteSortSystem orders sprites by height: the lower an entity stands,
// the later it is drawn.
type SpriteSortSystem struct{}

func NewSpriteSortSystem() *SpriteSortSystem { return &SpriteSortSystem{} }

func (s *SpriteSortSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.SpriteSortComponent.Kind(), component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.SpriteSort, sprite *component.Sprite, t *component.Transform) {
		sprite.Order = SortOrder(t.Y)
	})
}

// SortOrder is the draw order for an entity standing at height y.
func SortOrder(y float64) int {
	return int(y * -10)
}
