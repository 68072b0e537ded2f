package prefabs

// ScreensFile is the prefab describing every screen's interface.
const ScreensFile = "screens.yaml"

type ScreensSpec struct {
	Initial string       `yaml:"initial"`
	Screens []ScreenSpec `yaml:"screens"`
}

type ScreenSpec struct {
	Name     string           `yaml:"name"`
	Level    string           `yaml:"level"`
	Elements []HideableSpec   `yaml:"elements"`
	Buttons  []ButtonSpec     `yaml:"buttons"`
	Scripts  []string         `yaml:"scripts"`
	Wheel    *FriendWheelSpec `yaml:"friend_wheel"`
}

type HideableSpec struct {
	Name         string  `yaml:"name"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Direction    string  `yaml:"direction"`
	Distance     float64 `yaml:"distance"`
	Rate         float64 `yaml:"rate"`
	Fade         bool    `yaml:"fade"`
	StartsHidden bool    `yaml:"starts_hidden"`
	OnHide       string  `yaml:"on_hide"`
	BlocksInput  bool    `yaml:"blocks_input"`
}

type ButtonSpec struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type FriendWheelSpec struct {
	X          float64               `yaml:"x"`
	Y          float64               `yaml:"y"`
	Spread     float64               `yaml:"spread"`
	RotateTime float64               `yaml:"rotate_time"`
	Colors     map[string]*YAMLColor `yaml:"colors"`
}

func LoadScreensSpec() (ScreensSpec, error) {
	return LoadSpec[ScreensSpec](ScreensFile)
}

// Find returns the screen named name.
func (s ScreensSpec) Find(name string) (ScreenSpec, bool) {
	for _, screen := range s.Screens {
		if screen.Name == name {
			return screen, true
		}
	}
	return ScreenSpec{}, false
}
