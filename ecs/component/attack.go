package component

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
)

// DefaultAttackInterval is the cooldown used when a prefab leaves it unset.
const DefaultAttackInterval = 3.0

// Attack is a cooldown-gated projectile launcher.
type Attack struct {
	Attacking bool
	Direction cp.Vector

	// Circular volleys fire CircularCount projectiles evenly spaced around
	// the shooter and ignore Direction.
	Circular      bool
	CircularCount int

	Interval float64
	Timer    float64

	Projectile  string
	Sound       string
	SpawnOffset float64
}

// NewAttack returns a launcher that can fire on its first tick.
func NewAttack(interval float64) *Attack {
	if interval <= 0 {
		interval = DefaultAttackInterval
	}
	return &Attack{Interval: interval, Timer: interval}
}

// Tick advances the cooldown by dt and reports whether a volley is due.
// At most one volley is released per tick. When the launcher has nothing
// to fire the timer is clamped to Interval so unused cooldown is not banked.
func (a *Attack) Tick(dt float64) bool {
	if a == nil {
		return false
	}
	a.Timer += dt
	if a.Timer < a.Interval {
		return false
	}
	if !a.ready() {
		a.Timer = a.Interval
		return false
	}
	a.Timer -= a.Interval
	return true
}

func (a *Attack) ready() bool {
	if !a.Attacking {
		return false
	}
	if a.Circular {
		return a.CircularCount > 0
	}
	return !common.IsZero(a.Direction)
}

// Volley returns the unit direction of every projectile in one volley.
func (a *Attack) Volley() []cp.Vector {
	if a == nil {
		return nil
	}
	if !a.Circular {
		if common.IsZero(a.Direction) {
			return nil
		}
		return []cp.Vector{common.Normalize(a.Direction)}
	}
	out := make([]cp.Vector, 0, a.CircularCount)
	for i := 0; i < a.CircularCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(a.CircularCount)
		out = append(out, cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)})
	}
	return out
}

var AttackComponent = NewComponent[Attack]()
