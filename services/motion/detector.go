package motion

import "wristcore-go/types"

// Wrist-raise window, in raw sensor units at ±2 g.
const (
	xHalfWindow = 335 // x+335 <= 670; only the upper bound is checked
	xWindow     = 2 * xHalfWindow
	yDrop       = 230 // y must fall this far below the anchor
)

// Detector recognises a wrist raise from a stream of samples: the watch
// face tilting towards the wearer shows up as y falling sharply while x
// stays near zero and z points down. It keeps a single anchor value.
type Detector struct {
	last int32
}

// Observe feeds one sample and reports whether it completes a wrist raise.
func (d *Detector) Observe(s types.AccelSample) bool {
	if s.Y >= 0 {
		d.last = 0
		return false
	}
	if s.X+xHalfWindow > xWindow || s.Z >= 0 {
		return false
	}
	fire := s.Y+yDrop < d.last
	d.last = s.Y
	return fire
}

// Anchor returns the current hysteresis anchor.
func (d *Detector) Anchor() int32 { return d.last }

func (d *Detector) Reset() { d.last = 0 }
