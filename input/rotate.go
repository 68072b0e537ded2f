package input

// DefaultReleaseThreshold is how close to rest the rotate axis must return
// before another rotation can fire.
const DefaultReleaseThreshold = 0.1

// RotateDetector turns an analog rotate axis into discrete rotation
// requests: one request per push, re-armed only after the axis returns near
// rest.
type RotateDetector struct {
	ReleaseThreshold float64
	ready            bool
}

func NewRotateDetector() *RotateDetector {
	return &RotateDetector{ReleaseThreshold: DefaultReleaseThreshold}
}

// Update feeds one axis sample and returns the rotation it triggers.
func (d *RotateDetector) Update(axis float64) Rotation {
	if d == nil {
		return RotateNone
	}
	th := d.ReleaseThreshold
	if d.ready {
		if axis < -1+th {
			d.ready = false
			return RotateLeft
		}
		if axis > 1-th {
			d.ready = false
			return RotateRight
		}
		return RotateNone
	}
	if axis < th && axis > -th {
		d.ready = true
	}
	return RotateNone
}

// Apply runs the detector on s.RotateAxis and stores the result in s.Rotate.
func (d *RotateDetector) Apply(s *State) {
	if s == nil {
		return
	}
	s.Rotate = d.Update(s.RotateAxis)
}
