package common

import "github.com/jakecoffman/cp"

// Lerper moves a position linearly in time toward a target.
type Lerper struct {
	Position cp.Vector

	from     cp.Vector
	to       cp.Vector
	duration float64
	t        float64
	active   bool
}

// MoveTo starts an interpolation from the current position to target over
// duration seconds. A non-positive duration snaps on the next Update.
func (l *Lerper) MoveTo(target cp.Vector, duration float64) {
	l.from = l.Position
	l.to = target
	l.duration = duration
	l.t = 0
	l.active = true
}

// Update advances the interpolation by dt and returns the new position.
func (l *Lerper) Update(dt float64) cp.Vector {
	if !l.active {
		return l.Position
	}
	l.t += dt
	if l.t >= l.duration {
		l.t = l.duration
		l.active = false
		l.Position = l.to
		return l.Position
	}
	l.Position = LerpVector(l.from, l.to, l.t/l.duration)
	return l.Position
}

// Active reports whether an interpolation is in progress.
func (l *Lerper) Active() bool {
	return l.active
}

// Target returns where the current or last interpolation ends.
func (l *Lerper) Target() cp.Vector {
	if !l.active {
		return l.Position
	}
	return l.to
}
