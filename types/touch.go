package types

// ------------------------
// Touch
// ------------------------

// Phase is the controller's gesture id for a touch sample.
type Phase uint8

const (
	PhaseNone      Phase = 0x00 // junk / no event
	PhaseDown      Phase = 0x01
	PhaseUp        Phase = 0x02
	PhaseLeft      Phase = 0x03
	PhaseRight     Phase = 0x04
	PhaseTap       Phase = 0x05
	PhaseDoubleTap Phase = 0x0B
	PhaseLongPress Phase = 0x0C
)

func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseDown:
		return "down"
	case PhaseUp:
		return "up"
	case PhaseLeft:
		return "left"
	case PhaseRight:
		return "right"
	case PhaseTap:
		return "tap"
	case PhaseDoubleTap:
		return "double_tap"
	case PhaseLongPress:
		return "long_press"
	default:
		return "unknown"
	}
}

// IsSwipe reports whether the phase is one of the four swipe directions.
func (p Phase) IsSwipe() bool {
	return p >= PhaseDown && p <= PhaseRight
}

// TouchEvent is one debounced touch, 12-bit panel coordinates.
type TouchEvent struct {
	Phase Phase
	X     uint16
	Y     uint16
}

// RawTouch is the six status/coordinate bytes read from the controller,
// starting at the gesture id register.
type RawTouch [6]byte
