package types

import "time"

// ------------------------
// Motion
// ------------------------

// AccelSample is one 3-axis reading in raw sensor units.
type AccelSample struct {
	X, Y, Z int32
}

// GestureState is owned by the motion capture. StepCount only grows, except
// on an explicit reset which re-seeds a small nonzero warm-up baseline.
type GestureState struct {
	StepCount   uint32
	LastYAccel  int32 // hysteresis anchor
	PoweredDown bool
}

// WakeGesture reports a detected wrist raise.
type WakeGesture struct {
	TS time.Time
	Y  int32 // y sample that crossed the threshold
}
