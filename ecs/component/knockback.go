package component

// Knockback suspends controller-driven velocity while an impulse plays
// out.
type Knockback struct {
	Remaining float64
}

// DefaultKnockbackTime is how long a knocked back body ignores its
// controller, in seconds.
const DefaultKnockbackTime = 0.2

var KnockbackComponent = NewComponent[Knockback]()
