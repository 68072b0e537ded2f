package system

import (
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/entity"
	"github.com/milk9111/sqwad/input"
)

// InteractionSystem handles the level pieces a party walks into: zones,
// pickups, doors and triggered spawners.
type InteractionSystem struct{}

func NewInteractionSystem() *InteractionSystem { return &InteractionSystem{} }

func (s *InteractionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Peek(ecs.EventOverlapEnter, ecs.EventOverlapExit) {
		if evt.Type == ecs.EventOverlapExit {
			if door, ok := ecs.Get(w, evt.Entity, component.DoorComponent.Kind()); ok {
				door.Leave(uint64(evt.Other))
			}
			continue
		}
		if !ecs.IsAlive(w, evt.Entity) || !ecs.IsAlive(w, evt.Other) {
			continue
		}

		if sp, ok := ecs.Get(w, evt.Entity, component.SpawnerComponent.Kind()); ok {
			if ecs.Has(w, evt.Other, component.PartyComponent.Kind()) {
				sp.Triggered = true
			}
			continue
		}

		friend, isFriend := ecs.Get(w, evt.Other, component.FriendComponent.Kind())
		if !isFriend {
			continue
		}

		if zone, ok := ecs.Get(w, evt.Entity, component.ZoneComponent.Kind()); ok {
			s.enterZone(w, evt.Entity, zone, evt.Other, friend)
			continue
		}
		if pickup, ok := ecs.Get(w, evt.Entity, component.PickupComponent.Kind()); ok {
			s.collect(w, evt.Entity, pickup, friend)
			continue
		}
		if door, ok := ecs.Get(w, evt.Entity, component.DoorComponent.Kind()); ok {
			door.Enter(uint64(evt.Other))
		}
	}

	if w.Input().Pressed(input.Select) {
		s.useDoors(w)
	}
}

func (s *InteractionSystem) enterZone(w *ecs.World, zoneEnt ecs.Entity, zone *component.Zone, friendEnt ecs.Entity, friend *component.Friend) {
	if health, ok := ecs.Get(w, friendEnt, component.HealthComponent.Kind()); ok {
		health.Damage(zone.Damage)
	}
	if zone.Force == 0 {
		return
	}
	partyEnt := ecs.Entity(friend.Party)
	partyT, ok := ecs.Get(w, partyEnt, component.TransformComponent.Kind())
	if !ok {
		return
	}
	zoneT, _ := ecs.Get(w, zoneEnt, component.TransformComponent.Kind())
	dir := common.Normalize(partyT.Position().Sub(zoneT.Position()))
	if common.IsZero(dir) {
		return
	}
	ApplyKnockback(w, partyEnt, dir.Mult(zone.Force))
}

func (s *InteractionSystem) collect(w *ecs.World, pickupEnt ecs.Entity, pickup *component.Pickup, friend *component.Friend) {
	if pickup.Kind == component.PickupKindHeal {
		HealParty(w, ecs.Entity(friend.Party), pickup.Modification)
	}
	if stats, ok := worldStats(w); ok {
		stats.Pickups++
	}
	ecs.DestroyEntity(w, pickupEnt)
}

// useDoors moves the party through the first unlocked occupied door.
func (s *InteractionSystem) useDoors(w *ecs.World) {
	partyEnt, ok := ecs.First(w, component.PartyComponent.Kind())
	if !ok {
		return
	}
	used := false
	ecs.ForEach(w, component.DoorComponent.Kind(), func(e ecs.Entity, door *component.Door) {
		if used || door.Locked || !door.Occupied() {
			return
		}
		used = true
		_ = entity.SetEntityTransform(w, partyEnt, door.OtherX, door.OtherY, 0)
	})
}

// HealParty heals every live member of the party.
func HealParty(w *ecs.World, partyEnt ecs.Entity, amount int) {
	party, ok := ecs.Get(w, partyEnt, component.PartyComponent.Kind())
	if !ok {
		return
	}
	for _, d := range common.Directions {
		fe := ecs.Entity(party.Friend(d))
		if !liveFriend(w, fe) {
			continue
		}
		if health, ok := ecs.Get(w, fe, component.HealthComponent.Kind()); ok {
			health.Heal(amount)
		}
	}
}
