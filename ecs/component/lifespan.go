package component

// LifeSpan destroys its entity once Age reaches Seconds.
type LifeSpan struct {
	Seconds float64
	Age     float64
}

var LifeSpanComponent = NewComponent[LifeSpan]()
