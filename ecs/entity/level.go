package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/levels"
)

// LoadLevelToWorld creates the level bounds, the party and every placed
// prefab. It returns the party entity.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if world == nil || lvl == nil {
		return 0, fmt.Errorf("level: world and level are required")
	}

	if lvl.Walls {
		bounds := ecs.CreateEntity(world)
		if err := ecs.Add(world, bounds, component.BoundsComponent.Kind(), &component.Bounds{
			Width:  lvl.Width,
			Height: lvl.Height,
		}); err != nil {
			return 0, err
		}
	}

	party, err := NewParty(world, lvl.Party.Prefab, cp.Vector{X: lvl.Party.X, Y: lvl.Party.Y})
	if err != nil {
		return 0, fmt.Errorf("level %q: %w", lvl.Name, err)
	}

	for i, ent := range lvl.Entities {
		pos := cp.Vector{X: ent.X, Y: ent.Y}
		if _, err := SpawnWithOverrides(world, ent.Prefab, pos, ent.Components); err != nil {
			return 0, fmt.Errorf("level %q: entity %d: %w", lvl.Name, i, err)
		}
	}

	return party, nil
}

// LoadLevel reads an embedded level by name and loads it.
func LoadLevel(world *ecs.World, name string) (ecs.Entity, error) {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return 0, err
	}
	return LoadLevelToWorld(world, lvl)
}
