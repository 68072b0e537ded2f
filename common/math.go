package common

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpVector interpolates between a and b without clamping t.
func LerpVector(a, b cp.Vector, t float64) cp.Vector {
	return cp.Vector{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// AngleBetweenPoints returns the angle of the vector pointing from b to a.
func AngleBetweenPoints(a, b cp.Vector) float64 {
	return math.Atan2(a.Y-b.Y, a.X-b.X)
}

// FromMagnitudeAndAngle returns origin + (cos, sin)(angle) * magnitude.
func FromMagnitudeAndAngle(magnitude, angle float64, origin cp.Vector) cp.Vector {
	return cp.Vector{
		X: origin.X + magnitude*math.Cos(angle),
		Y: origin.Y + magnitude*math.Sin(angle),
	}
}

// AngleFromArcLength returns the angle subtended by an arc of the given
// length on a circle of the given radius.
func AngleFromArcLength(length, radius float64) float64 {
	return length / radius
}

// Normalize returns v scaled to unit length, or the zero vector.
func Normalize(v cp.Vector) cp.Vector {
	l := math.Hypot(v.X, v.Y)
	if l <= 1e-9 {
		return cp.Vector{}
	}
	return cp.Vector{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether v has no meaningful length.
func IsZero(v cp.Vector) bool {
	return math.Hypot(v.X, v.Y) <= 1e-9
}

// RandomNormal draws from N(mean, stdDev) with a Box-Muller transform.
// positiveOnly folds the result onto the positive half.
func RandomNormal(r *rand.Rand, mean, stdDev float64, positiveOnly bool) float64 {
	u1 := 1 - r.Float64()
	u2 := r.Float64()
	n := mean + stdDev*math.Sqrt(-2*math.Log(u1))*math.Sin(2*math.Pi*u2)
	if positiveOnly {
		n = math.Abs(n)
	}
	return n
}
