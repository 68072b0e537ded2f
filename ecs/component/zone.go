package component

// Zone hurts friends that enter it and shoves their party away.
type Zone struct {
	Damage int
	Force  float64
}

var ZoneComponent = NewComponent[Zone]()
