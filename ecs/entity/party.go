package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/prefabs"
)

type partySpec = prefabs.PartyComponentSpec

func addParty(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[partySpec](raw)
	if err != nil {
		return fmt.Errorf("decode party spec: %w", err)
	}
	if spec.Spread <= 0 {
		return fmt.Errorf("party spread must be positive")
	}

	members := make(map[common.Direction]string, len(spec.Members))
	for name, prefab := range spec.Members {
		d, err := common.ParseDirection(name)
		if err != nil {
			return err
		}
		members[d] = prefab
	}
	ctx.Members = members

	return ecs.Add(w, e, component.PartyComponent.Kind(), &component.Party{
		Spread:     spec.Spread,
		RotateTime: spec.RotateTime,
		MoveSpeed:  spec.MoveSpeed,
	})
}

// NewParty builds the party prefab and its four members at pos.
func NewParty(w *ecs.World, prefabPath string, pos cp.Vector) (ecs.Entity, error) {
	e, err := Spawn(w, prefabPath, pos)
	if err != nil {
		return 0, err
	}
	if _, ok := ecs.Get(w, e, component.PartyComponent.Kind()); !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("party: prefab %q has no party component", prefabPath)
	}
	return e, nil
}

// buildMembers places one friend per slot, already at its resting offset.
func buildMembers(w *ecs.World, partyEnt ecs.Entity, members map[common.Direction]string) error {
	party, ok := ecs.Get(w, partyEnt, component.PartyComponent.Kind())
	if !ok {
		return fmt.Errorf("members require a party component")
	}
	centre := cp.Vector{}
	if t, ok := ecs.Get(w, partyEnt, component.TransformComponent.Kind()); ok {
		centre = t.Position()
	}

	for _, d := range common.Directions {
		prefab, ok := members[d]
		if !ok || prefab == "" {
			continue
		}
		offset := d.Vector(party.Spread)
		fe, err := Spawn(w, prefab, centre.Add(offset))
		if err != nil {
			return fmt.Errorf("member %s: %w", d, err)
		}
		friend, ok := ecs.Get(w, fe, component.FriendComponent.Kind())
		if !ok {
			ecs.DestroyEntity(w, fe)
			return fmt.Errorf("member %s: prefab %q has no friend component", d, prefab)
		}
		friend.Party = uint64(partyEnt)
		friend.Direction = d
		friend.Facing = d
		friend.Offset = common.Lerper{Position: offset}
		party.Slots[d] = uint64(fe)
	}
	return nil
}

func destroyParty(w *ecs.World, partyEnt ecs.Entity) {
	if party, ok := ecs.Get(w, partyEnt, component.PartyComponent.Kind()); ok {
		for _, f := range party.Slots {
			if f != 0 {
				ecs.DestroyEntity(w, ecs.Entity(f))
			}
		}
	}
	ecs.DestroyEntity(w, partyEnt)
}
