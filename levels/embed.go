package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Default is the level a new game starts on.
const Default = "arena.yaml"

type Level struct {
	Name     string   `yaml:"name"`
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	Walls    bool     `yaml:"walls"`
	Party    Entity   `yaml:"party"`
	Entities []Entity `yaml:"entities,omitempty"`
}

// Entity places a prefab. Components are merged over the prefab's own
// component map.
type Entity struct {
	Prefab     string         `yaml:"prefab"`
	X          float64        `yaml:"x"`
	Y          float64        `yaml:"y"`
	Components map[string]any `yaml:"components,omitempty"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Party.Prefab == "" {
		return nil, fmt.Errorf("level %q: party prefab is required", name)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("level %q: size must be positive", name)
	}
	return &lvl, nil
}
