package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[string][]byte)
)

func loadCached(filename string) ([]byte, error) {
	key := cleanPrefabPath(filename)
	cacheMu.RLock()
	data, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		return data, nil
	}

	data, err := Load(key)
	if err != nil {
		return nil, err
	}
	cacheMu.Lock()
	cache[key] = data
	cacheMu.Unlock()
	return data, nil
}

// Invalidate forgets the cached copy of a prefab so the next load reads it
// again. Paths may be absolute or relative to the prefabs directory.
func Invalidate(path string) {
	key := cleanPrefabPath(path)
	if i := strings.LastIndex(key, "prefabs/"); i >= 0 {
		key = key[i+len("prefabs/"):]
	}
	cacheMu.Lock()
	delete(cache, key)
	cacheMu.Unlock()
}

func InvalidateAll() {
	cacheMu.Lock()
	cache = make(map[string][]byte)
	cacheMu.Unlock()
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := loadCached(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

func ParseColor(raw string) (color.NRGBA, error) {
	s := strings.TrimPrefix(raw, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", raw)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
