package system

import (
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
)

// AudioPlayer plays one-shot clips by name.
type AudioPlayer interface {
	Play(name string)
}

// AudioSystem hands queued clip requests to the player. Requests are
// dropped when there is no player.
type AudioSystem struct {
	player AudioPlayer
}

func NewAudioSystem(player AudioPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (s *AudioSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.AudioComponent.Kind(), func(e ecs.Entity, a *component.Audio) {
		if len(a.Pending) == 0 {
			return
		}
		if s.player != nil {
			for _, name := range a.Pending {
				s.player.Play(name)
			}
		}
		a.Pending = a.Pending[:0]
	})
}
