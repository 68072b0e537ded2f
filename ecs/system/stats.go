package system

import (
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
)

// StatsSystem counts survival time while any party still stands.
type StatsSystem struct{}

func NewStatsSystem() *StatsSystem { return &StatsSystem{} }

func (s *StatsSystem) Update(w *ecs.World) {
	stats, ok := worldStats(w)
	if !ok {
		return
	}
	standing := false
	ecs.ForEach(w, component.PartyComponent.Kind(), func(e ecs.Entity, p *component.Party) {
		if !p.Lost {
			standing = true
		}
	})
	if standing {
		stats.Survived += w.Delta()
	}
}
