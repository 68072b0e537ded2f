package entity

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string

	// Position, when set, overrides the prefab transform.
	Position *cp.Vector

	// Members are the friend prefabs of a party, built after the party
	// itself.
	Members map[common.Direction]string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":    addTransform,
	"faction":      addFaction,
	"health":       addHealth,
	"attack":       addAttack,
	"projectile":   addProjectile,
	"enemy":        addEnemy,
	"friend":       addFriend,
	"party":        addParty,
	"collider":     addCollider,
	"physics_body": addPhysicsBody,
	"life_span":    addLifeSpan,
	"spawner":      addSpawner,
	"zone":         addZone,
	"pickup":       addPickup,
	"door":         addDoor,
	"sprite":       addSprite,
	"sprite_sort":  addSpriteSort,
	"animation":    addAnimation,
	"audio":        addAudio,
	"stats":        addStats,
}

var componentBuildOrder = []string{
	"transform",
	"faction",
	"health",
	"attack",
	"projectile",
	"enemy",
	"friend",
	"party",
	"collider",
	"physics_body",
	"life_span",
	"spawner",
	"zone",
	"pickup",
	"door",
	"sprite",
	"sprite_sort",
	"animation",
	"audio",
	"stats",
}

// BuildEntity creates an entity from a prefab. A prefab that fails to build
// leaves nothing behind in the world.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	return build(w, prefabPath, nil, &buildContext{PrefabPath: prefabPath})
}

// Spawn builds a prefab at pos.
func Spawn(w *ecs.World, prefabPath string, pos cp.Vector) (ecs.Entity, error) {
	return build(w, prefabPath, nil, &buildContext{PrefabPath: prefabPath, Position: &pos})
}

// SpawnWithOverrides builds a prefab at pos after merging overrides into
// its component map, one component at a time.
func SpawnWithOverrides(w *ecs.World, prefabPath string, pos cp.Vector, overrides map[string]any) (ecs.Entity, error) {
	return build(w, prefabPath, overrides, &buildContext{PrefabPath: prefabPath, Position: &pos})
}

func build(w *ecs.World, prefabPath string, overrides map[string]any, ctx *buildContext) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)

	remaining := mergeComponents(spec.Components, overrides)

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	if ctx.Position != nil {
		if err := SetEntityTransform(w, e, ctx.Position.X, ctx.Position.Y, 0); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: %w", prefabPath, err)
		}
	}

	wireHealth(w, e)

	if len(ctx.Members) > 0 {
		if err := buildMembers(w, e, ctx.Members); err != nil {
			destroyParty(w, e)
			return 0, fmt.Errorf("build entity: %q: %w", prefabPath, err)
		}
	}

	return e, nil
}

func mergeComponents(base, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		baseMap, okBase := out[k].(map[string]any)
		overMap, okOver := v.(map[string]any)
		if !okBase || !okOver {
			out[k] = v
			continue
		}
		merged := make(map[string]any, len(baseMap)+len(overMap))
		for mk, mv := range baseMap {
			merged[mk] = mv
		}
		for mk, mv := range overMap {
			merged[mk] = mv
		}
		out[k] = merged
	}
	return out
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		body.Body.SetPosition(cp.Vector{X: x, Y: y})
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

// wireHealth turns an empty health pool into a Dead marker and a hurt
// animation. The subscriptions live as long as the entity.
func wireHealth(w *ecs.World, e ecs.Entity) {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return
	}
	ecs.Own(w, e,
		health.Died.Connect(func(struct{}) {
			if ecs.IsAlive(w, e) {
				_ = ecs.Add(w, e, component.DeadComponent.Kind(), &component.Dead{})
			}
		}),
		health.TookDamage.Connect(func(int) {
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				anim.Play(component.AnimationHurt, true)
			}
		}),
	)
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type factionSpec = prefabs.FactionComponentSpec

func addFaction(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[factionSpec](raw)
	if err != nil {
		return fmt.Errorf("decode faction spec: %w", err)
	}
	side, err := component.ParseSide(spec.Side)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.FactionComponent.Kind(), &component.Faction{Side: side})
}

type healthSpec = prefabs.HealthComponentSpec

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		return fmt.Errorf("health max must be positive, got %d", spec.Max)
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(spec.Max))
}

type attackSpec = prefabs.AttackComponentSpec

func addAttack(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[attackSpec](raw)
	if err != nil {
		return fmt.Errorf("decode attack spec: %w", err)
	}
	if spec.Projectile == "" {
		return fmt.Errorf("attack requires a projectile prefab")
	}
	attack := component.NewAttack(spec.Interval)
	attack.Attacking = spec.Attacking
	attack.Direction = cp.Vector{X: spec.DirectionX, Y: spec.DirectionY}
	attack.Circular = spec.Circular
	attack.CircularCount = spec.CircularCount
	attack.Projectile = spec.Projectile
	attack.Sound = spec.Sound
	attack.SpawnOffset = spec.SpawnOffset
	return ecs.Add(w, e, component.AttackComponent.Kind(), attack)
}

type projectileSpec = prefabs.ProjectileComponentSpec

func addProjectile(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[projectileSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projectile spec: %w", err)
	}
	lifespan := spec.Lifespan
	if lifespan <= 0 {
		lifespan = 10
	}
	return ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Speed:         spec.Speed,
		Lifespan:      lifespan,
		Damage:        spec.Damage,
		Penetrating:   spec.Penetrating,
		Explosive:     spec.Explosive,
		Force:         spec.Force,
		Reflects:      spec.Reflects,
		GrowthRate:    spec.GrowthRate,
		DropOnDestroy: spec.DropOnDestroy,
	})
}

type enemySpec = prefabs.EnemyComponentSpec

func addEnemy(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[enemySpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy spec: %w", err)
	}
	retarget := spec.RetargetInterval
	if retarget <= 0 {
		retarget = component.DefaultRetargetInterval
	}
	drops := make([]component.ChanceDrop, 0, len(spec.ChanceDrop))
	for _, d := range spec.ChanceDrop {
		if d.Prefab == "" {
			return fmt.Errorf("chance drop without prefab")
		}
		drops = append(drops, component.ChanceDrop{Prefab: d.Prefab, Chance: d.Chance})
	}
	return ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		MoveSpeed:        spec.MoveSpeed,
		DiesOnContact:    spec.DiesOnContact,
		AlwaysDrop:       append([]string(nil), spec.AlwaysDrop...),
		ChanceDrop:       drops,
		DropForce:        spec.DropForce,
		RetargetInterval: retarget,
	})
}

type friendSpec = prefabs.FriendComponentSpec

func addFriend(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[friendSpec](raw)
	if err != nil {
		return fmt.Errorf("decode friend spec: %w", err)
	}
	friend := &component.Friend{}
	for name, clip := range spec.Sprites {
		d, err := common.ParseDirection(name)
		if err != nil {
			return err
		}
		friend.Sprites[d] = clip
	}
	return ecs.Add(w, e, component.FriendComponent.Kind(), friend)
}

type colliderSpec = prefabs.ColliderComponentSpec

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[colliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	if spec.Radius <= 0 {
		return fmt.Errorf("collider radius must be positive")
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Radius:  spec.Radius,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:   spec.Radius,
		Mass:     spec.Mass,
		Friction: spec.Friction,
		Static:   spec.Static,
	})
}

type lifeSpanSpec = prefabs.LifeSpanComponentSpec

func addLifeSpan(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[lifeSpanSpec](raw)
	if err != nil {
		return fmt.Errorf("decode life span spec: %w", err)
	}
	return ecs.Add(w, e, component.LifeSpanComponent.Kind(), &component.LifeSpan{Seconds: spec.Seconds})
}

type spawnerSpec = prefabs.SpawnerComponentSpec

func addSpawner(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spawnerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode spawner spec: %w", err)
	}
	if spec.Prefab == "" {
		return fmt.Errorf("spawner requires a prefab")
	}
	if spec.Interval <= 0 {
		return fmt.Errorf("spawner interval must be positive")
	}
	if !spec.Infinite && spec.Count <= 0 {
		return fmt.Errorf("finite spawner needs a positive count")
	}
	return ecs.Add(w, e, component.SpawnerComponent.Kind(), &component.Spawner{
		Prefab:          spec.Prefab,
		Interval:        spec.Interval,
		Infinite:        spec.Infinite,
		Remaining:       spec.Count,
		RequiresTrigger: spec.RequiresTrigger,
		Triggered:       !spec.RequiresTrigger,
	})
}

type zoneSpec = prefabs.ZoneComponentSpec

func addZone(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[zoneSpec](raw)
	if err != nil {
		return fmt.Errorf("decode zone spec: %w", err)
	}
	return ecs.Add(w, e, component.ZoneComponent.Kind(), &component.Zone{Damage: spec.Damage, Force: spec.Force})
}

type pickupSpec = prefabs.PickupComponentSpec

func addPickup(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[pickupSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pickup spec: %w", err)
	}
	kind := spec.Kind
	if kind == "" {
		kind = component.PickupKindHeal
	}
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: kind, Modification: spec.Modification})
}

type doorSpec = prefabs.DoorComponentSpec

func addDoor(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[doorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode door spec: %w", err)
	}
	return ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{
		Locked: spec.Locked,
		OtherX: spec.OtherX,
		OtherY: spec.OtherY,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	sprite := &component.Sprite{Clip: spec.Clip, Size: spec.Size}
	if spec.Color != nil {
		sprite.Color = spec.Color.NRGBA
	} else {
		sprite.Color = component.DefaultSpriteColor
	}
	if sprite.Size <= 0 {
		sprite.Size = 16
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), sprite)
}

func addSpriteSort(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SpriteSortComponent.Kind(), &component.SpriteSort{})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
			Next:       def.Next,
		}
	}
	anim := &component.Animation{Defs: defs}
	if spec.Current != "" && !anim.Play(spec.Current, true) {
		return fmt.Errorf("animation %q is not defined", spec.Current)
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
}

func addAudio(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{})
}

func addStats(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.StatsComponent.Kind(), &component.Stats{})
}
