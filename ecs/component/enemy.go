package component

// DefaultRetargetInterval is how often an enemy rescans for the nearest
// friend, in seconds.
const DefaultRetargetInterval = 5.0

// ChanceDrop is a prefab dropped on death with the given probability.
type ChanceDrop struct {
	Prefab string
	Chance float64
}

type Enemy struct {
	MoveSpeed     float64
	DiesOnContact bool

	AlwaysDrop []string
	ChanceDrop []ChanceDrop
	DropForce  float64

	RetargetInterval float64
	// RetargetTimer counts down to the next scan; zero scans on the next tick.
	RetargetTimer float64

	// Target is the friend being chased, or zero.
	Target uint64
}

var EnemyComponent = NewComponent[Enemy]()
