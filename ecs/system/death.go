package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/entity"
)

// DeathSystem resolves entities marked dead: enemies drop loot, friends
// leave their party slot, and the party is defeated when no slot is left.
type DeathSystem struct{}

func NewDeathSystem() *DeathSystem { return &DeathSystem{} }

func (s *DeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.DeadComponent.Kind(), func(e ecs.Entity, _ *component.Dead) {
		if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
			s.dropLoot(w, e, enemy)
			if stats, ok := worldStats(w); ok {
				stats.Kills++
			}
		}
		if friend, ok := ecs.Get(w, e, component.FriendComponent.Kind()); ok {
			s.leaveParty(w, e, friend)
		}
		w.Events().Push(ecs.Event{Type: ecs.EventDied, Entity: e})
		ecs.DestroyEntity(w, e)
	})
}

func (s *DeathSystem) dropLoot(w *ecs.World, e ecs.Entity, enemy *component.Enemy) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pos := t.Position()

	for _, prefab := range enemy.AlwaysDrop {
		s.drop(w, prefab, pos, enemy.DropForce)
	}
	for _, entry := range enemy.ChanceDrop {
		if w.Rand().Float64() < entry.Chance {
			s.drop(w, entry.Prefab, pos, enemy.DropForce)
		}
	}
}

// drop spawns prefab at pos and flings it in a random direction when it is
// physically simulated.
func (s *DeathSystem) drop(w *ecs.World, prefab string, pos cp.Vector, force float64) {
	de, err := entity.Spawn(w, prefab, pos)
	if err != nil {
		log.Printf("death: drop: %v", err)
		return
	}
	if stats, ok := worldStats(w); ok {
		stats.Drops++
	}
	body, ok := ecs.Get(w, de, component.PhysicsBodyComponent.Kind())
	if !ok || force == 0 {
		return
	}
	angle := w.Rand().Float64() * 2 * math.Pi
	body.ApplyImpulse(common.FromMagnitudeAndAngle(force, angle, cp.Vector{}))
}

func (s *DeathSystem) leaveParty(w *ecs.World, e ecs.Entity, friend *component.Friend) {
	partyEnt := ecs.Entity(friend.Party)
	party, ok := ecs.Get(w, partyEnt, component.PartyComponent.Kind())
	if !ok {
		return
	}
	party.Vacate(uint64(e))
	if !party.Empty() || party.Lost {
		return
	}
	party.Lost = true
	party.Defeated.Emit(struct{}{})
	w.Events().Push(ecs.Event{Type: ecs.EventPartyDefeated, Entity: partyEnt})
}
