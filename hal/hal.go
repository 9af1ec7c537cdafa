// Package hal holds the small hardware abstractions the capture drivers
// consume: I²C transport, output/IRQ pins and a millisecond delay primitive.
package hal

import (
	"time"

	"tinygo.org/x/drivers"
)

// I2C is the register transport (compatible with tinygo.org/x/drivers.I2C and
// periph.io i2c.Bus, which share the Tx shape).
type I2C = drivers.I2C

// ---- GPIO abstractions ----

// OutputPin drives a line such as a controller reset.
type OutputPin interface {
	Set(level bool)
}

// Edge selection for IRQ.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

// IRQPin is an input that can call a handler from interrupt context.
// The handler MUST NOT block.
type IRQPin interface {
	Get() bool
	SetIRQ(edge Edge, handler func()) error
	ClearIRQ() error
}

// Backlight sets a panel brightness level; 0 is off.
type Backlight interface {
	SetLevel(level uint8)
}

// Delay blocks the caller for at least d. Used only for bounded power
// transition sequences.
type Delay func(d time.Duration)

// Sleep is the default Delay.
func Sleep(d time.Duration) { time.Sleep(d) }

// PinFunc adapts a plain setter to OutputPin.
type PinFunc func(level bool)

func (f PinFunc) Set(level bool) { f(level) }

// Battery reports the cell state.
type Battery interface {
	// Level is the charge in percent, 0..100.
	Level() int
	Charging() bool
}
