package ramp

import (
	"time"

	"wristcore-go/x/mathx"
)

// Step sets the new level in [0..top].
type Step func(level uint8)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Linear steps a level from cur to 'to' in 'steps' equal increments spread
// over duration, calling set on every change. It is synchronous and caller
// driven; steps==0 or duration==0 snaps to 'to'. The final call always sets
// min(to, top).
func Linear(cur, to, top uint8, duration time.Duration, steps uint8, tick Tick, set Step) {
	if steps == 0 || duration <= 0 {
		set(mathx.Clamp(to, 0, top))
		return
	}
	stepDur := duration / time.Duration(steps)
	if stepDur <= 0 {
		stepDur = time.Millisecond
	}
	from := int(cur)
	d := int(to) - from
	for i := 1; i < int(steps); i++ {
		if !tick(stepDur) {
			return
		}
		lvl := from + d*i/int(steps)
		set(uint8(mathx.Clamp(lvl, 0, int(top))))
	}
	if !tick(stepDur) {
		return
	}
	set(mathx.Clamp(to, 0, top))
}
