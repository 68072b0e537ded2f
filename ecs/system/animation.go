package system

import (
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if !anim.Playing {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
			return
		}

		frameTime := 1 / def.FPS
		anim.FrameTimer += dt
		for anim.FrameTimer >= frameTime && anim.Playing {
			anim.FrameTimer -= frameTime
			anim.Frame++
			if anim.Frame < def.FrameCount {
				continue
			}
			switch {
			case def.Loop:
				anim.Frame = 0
			case def.Next != "" && anim.Play(def.Next, true):
				return
			default:
				anim.Frame = def.FrameCount - 1
				anim.Playing = false
			}
		}
	})
}
