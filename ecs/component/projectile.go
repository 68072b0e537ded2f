package component

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
)

type Projectile struct {
	Speed    float64
	Lifespan float64
	Damage   int

	// Penetrating projectiles survive a damaging hit.
	Penetrating bool
	// Explosive projectiles push targets away from their centre instead of
	// along the travel direction.
	Explosive bool
	Force     float64
	// Reflects turns other factions' projectiles around on contact.
	Reflects   bool
	GrowthRate float64

	DropOnDestroy string

	Velocity cp.Vector
	Age      float64
}

// Fire launches the projectile along dir at Speed and returns the facing
// angle of the travel direction.
func (p *Projectile) Fire(dir cp.Vector) float64 {
	if p == nil {
		return 0
	}
	n := common.Normalize(dir)
	p.Velocity = cp.Vector{X: n.X * p.Speed, Y: n.Y * p.Speed}
	return math.Atan2(p.Velocity.Y, p.Velocity.X)
}

func (p *Projectile) Expired() bool {
	return p != nil && p.Age >= p.Lifespan
}

var ProjectileComponent = NewComponent[Projectile]()
