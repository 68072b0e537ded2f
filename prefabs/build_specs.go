package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type HealthComponentSpec struct {
	Max int `yaml:"max"`
}

type AttackComponentSpec struct {
	Attacking     bool    `yaml:"attacking"`
	DirectionX    float64 `yaml:"direction_x"`
	DirectionY    float64 `yaml:"direction_y"`
	Circular      bool    `yaml:"circular"`
	CircularCount int     `yaml:"circular_count"`
	Interval      float64 `yaml:"interval"`
	Projectile    string  `yaml:"projectile"`
	Sound         string  `yaml:"sound"`
	SpawnOffset   float64 `yaml:"spawn_offset"`
}

type ProjectileComponentSpec struct {
	Speed         float64 `yaml:"speed"`
	Lifespan      float64 `yaml:"lifespan"`
	Damage        int     `yaml:"damage"`
	Penetrating   bool    `yaml:"penetrating"`
	Explosive     bool    `yaml:"explosive"`
	Force         float64 `yaml:"force"`
	Reflects      bool    `yaml:"reflects"`
	GrowthRate    float64 `yaml:"growth_rate"`
	DropOnDestroy string  `yaml:"drop_on_destroy"`
}

type ChanceDropSpec struct {
	Prefab string  `yaml:"prefab"`
	Chance float64 `yaml:"chance"`
}

type EnemyComponentSpec struct {
	MoveSpeed        float64          `yaml:"move_speed"`
	DiesOnContact    bool             `yaml:"dies_on_contact"`
	AlwaysDrop       []string         `yaml:"always_drop"`
	ChanceDrop       []ChanceDropSpec `yaml:"chance_drop"`
	DropForce        float64          `yaml:"drop_force"`
	RetargetInterval float64          `yaml:"retarget_interval"`
}

type FriendComponentSpec struct {
	Sprites map[string]string `yaml:"sprites"`
}

type PartyComponentSpec struct {
	Spread     float64           `yaml:"spread"`
	RotateTime float64           `yaml:"rotate_time"`
	MoveSpeed  float64           `yaml:"move_speed"`
	Members    map[string]string `yaml:"members"`
}

type FactionComponentSpec struct {
	Side string `yaml:"side"`
}

type ColliderComponentSpec struct {
	Radius  float64 `yaml:"radius"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type PhysicsBodyComponentSpec struct {
	Radius   float64 `yaml:"radius"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
	Static   bool    `yaml:"static"`
}

type LifeSpanComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}

type SpawnerComponentSpec struct {
	Prefab          string  `yaml:"prefab"`
	Interval        float64 `yaml:"interval"`
	Infinite        bool    `yaml:"infinite"`
	Count           int     `yaml:"count"`
	RequiresTrigger bool    `yaml:"requires_trigger"`
}

type ZoneComponentSpec struct {
	Damage int     `yaml:"damage"`
	Force  float64 `yaml:"force"`
}

type PickupComponentSpec struct {
	Kind         string `yaml:"kind"`
	Modification int    `yaml:"modification"`
}

type DoorComponentSpec struct {
	Locked bool    `yaml:"locked"`
	OtherX float64 `yaml:"other_x"`
	OtherY float64 `yaml:"other_y"`
}

type SpriteComponentSpec struct {
	Clip  string     `yaml:"clip"`
	Color *YAMLColor `yaml:"color"`
	Size  float64    `yaml:"size"`
}

type AnimationComponentSpec struct {
	Current string                      `yaml:"current"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
	Next       string  `yaml:"next"`
}
