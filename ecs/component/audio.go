package component

// Audio queues named one-shot clips for the audio system to play.
type Audio struct {
	Pending []string
}

func (a *Audio) Request(name string) {
	if a == nil || name == "" {
		return
	}
	a.Pending = append(a.Pending, name)
}

var AudioComponent = NewComponent[Audio]()
