package system

import (
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
)

// LerpSystem advances friend slot offsets and keeps friends attached to
// their party's centre.
type LerpSystem struct{}

func NewLerpSystem() *LerpSystem { return &LerpSystem{} }

func (s *LerpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w, component.FriendComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, friend *component.Friend, t *component.Transform) {
		offset := friend.Offset.Update(dt)
		partyT, ok := ecs.Get(w, ecs.Entity(friend.Party), component.TransformComponent.Kind())
		if !ok {
			return
		}
		t.SetPosition(partyT.Position().Add(offset))
	})
}
