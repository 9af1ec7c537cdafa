package display

import (
	"wristcore-go/types"
	"wristcore-go/x/mathx"
)

// Analog geometry.
const (
	centre     = 120
	angleShift = -90 // 0° points up
	numHands   = 3
)

// Hand indices, in stacking order (later hands paint over earlier ones).
const (
	handSecond = iota
	handMinute
	handHour
)

type point struct{ x, y int16 }

// pixelSet is one bit per panel pixel.
type pixelSet [Width * Height / 8]byte

func (p *pixelSet) add(x, y int16) {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return
	}
	i := int(y)*Width + int(x)
	p[i>>3] |= 1 << (i & 7)
}

func (p *pixelSet) has(x, y int16) bool {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return false
	}
	i := int(y)*Width + int(x)
	return p[i>>3]&(1<<(i&7)) != 0
}

func (p *pixelSet) addBlock(pt point, w int16) {
	for j := int16(0); j < w; j++ {
		for i := int16(0); i < w; i++ {
			p.add(pt.x+i, pt.y+j)
		}
	}
}

func (e *Engine) hand(i int) HandStyle {
	switch i {
	case handSecond:
		return e.style.Second
	case handMinute:
		return e.style.Minute
	default:
		return e.style.Hour
	}
}

// handPath appends the fill origins of a hand at the given angle. The hour
// hand starts one pixel back along its direction so it covers the centre
// the same way the longer hands do.
func handPath(dst []point, deg float64, length int, width int16, hour bool) []point {
	c, s := mathx.Unit(deg + angleShift)
	cx, cy := float64(centre), float64(centre)
	if hour {
		cx -= float64(mathx.Trunc(c))
		cy -= float64(mathx.Trunc(s))
	}
	half := float64(width / 2)
	for pix := 0; pix < length; pix++ {
		x, y := mathx.Polar(cx, cy, c, s, float64(pix))
		dst = append(dst, point{mathx.Trunc(x - half), mathx.Trunc(y - half)})
	}
	return dst
}

// pathFor computes the path of hand i for snapshot s into dst.
func (e *Engine) pathFor(dst []point, i int, s types.ClockSnapshot) []point {
	h := e.hand(i)
	switch i {
	case handSecond:
		return handPath(dst, float64(6*s.Second), h.Length, h.Width, false)
	case handMinute:
		return handPath(dst, float64(6*s.Minute), h.Length, h.Width, false)
	default:
		return handPath(dst, 30*(float64(s.Hour)+float64(s.Minute)/60), h.Length, h.Width, true)
	}
}

// changedHands reports which hands differ between o and s. The hour hand
// angle includes the minute, so it moves whenever the minute does.
func changedHands(o, s types.ClockSnapshot) (ch [numHands]bool) {
	ch[handSecond] = s.Second != o.Second
	ch[handMinute] = s.Minute != o.Minute
	ch[handHour] = s.Hour != o.Hour || ch[handMinute]
	return ch
}

// known reports whether hand i was on screen in o.
func known(o types.ClockSnapshot, i int) bool {
	switch i {
	case handSecond:
		return o.Second > -1
	case handMinute:
		return o.Minute > -1
	default:
		return o.Hour > -1
	}
}

// refreshAnalog erases the old paths of moved hands, then paints every hand
// in stacking order: moved hands in full, unmoved hands only where this
// refresh disturbed their pixels.
func (e *Engine) refreshAnalog(s types.ClockSnapshot) bool {
	o := e.snap
	ch := changedHands(o, s)
	if !ch[handSecond] && !ch[handMinute] && !ch[handHour] {
		return false
	}

	e.damage = pixelSet{}
	bg := e.style.Background
	for i := 0; i < numHands; i++ {
		if !ch[i] || !known(o, i) {
			continue
		}
		w := e.hand(i).Width
		e.old[i] = e.pathFor(e.old[i][:0], i, o)
		for _, p := range e.old[i] {
			e.r.Fill(bg, p.x, p.y, w, w)
			e.damage.addBlock(p, w)
		}
	}

	for i := 0; i < numHands; i++ {
		h := e.hand(i)
		e.paths[i] = e.pathFor(e.paths[i][:0], i, s)
		if ch[i] {
			for _, p := range e.paths[i] {
				e.r.Fill(h.Color, p.x, p.y, h.Width, h.Width)
				e.damage.addBlock(p, h.Width)
			}
			continue
		}
		e.repair(e.paths[i], h)
	}

	e.snap = s
	e.meter.Update()
	return true
}

// repair repaints the damaged pixels of an unmoved hand.
func (e *Engine) repair(path []point, h HandStyle) {
	for _, p := range path {
		for j := int16(0); j < h.Width; j++ {
			for i := int16(0); i < h.Width; i++ {
				x, y := p.x+i, p.y+j
				if e.damage.has(x, y) {
					e.r.Fill(h.Color, x, y, 1, 1)
				}
			}
		}
	}
}

// drawBezel paints the 60 minute ticks between bezelInner and bezelOuter;
// every fifth tick is a larger mark.
func (e *Engine) drawBezel() {
	for minute := 0; minute < 60; minute++ {
		c, s := mathx.Unit(float64(6*minute + angleShift))
		w, col := int16(1), e.style.BezelMinor
		if minute%5 == 0 {
			w, col = 4, e.style.BezelMajor
		}
		half := float64(w / 2)
		for pix := bezelInner; pix <= bezelOuter; pix++ {
			x, y := mathx.Polar(centre, centre, c, s, float64(pix))
			e.r.Fill(col, mathx.Trunc(x-half), mathx.Trunc(y-half), w, w)
		}
	}
}
