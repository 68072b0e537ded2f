package component

// AnimationDef describes one named clip.
type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
	// Next is played when a non-looping clip finishes.
	Next string
}

type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
	Playing    bool
}

// Play switches to the named clip. Restart rewinds a clip that is already
// current. Unknown names are ignored.
func (a *Animation) Play(name string, restart bool) bool {
	if a == nil {
		return false
	}
	if _, ok := a.Defs[name]; !ok {
		return false
	}
	if a.Current == name && !restart {
		return true
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
	return true
}

const AnimationHurt = "hurt"

var AnimationComponent = NewComponent[Animation]()
