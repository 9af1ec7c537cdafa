//go:build !tinygo

package platform

import (
	"time"

	"wristcore-go/platform/sim"
)

// Sim is a host board backed by the register models in package sim. The
// models stay reachable so scripts and tests can drive them.
type Sim struct {
	Board

	Touch     *sim.Touch
	Accel     *sim.Accel
	Frame     *sim.Framebuffer
	Cell      *sim.Battery
	Light     *sim.Backlight
	TouchLine *sim.Pin
	AccelLine *sim.Pin
}

// SimOptions tune NewSim. The zero value is a silent board on real time.
type SimOptions struct {
	// Now replaces the wall clock.
	Now func() time.Time
	// Delay replaces hal.Sleep; tests pass a no-op.
	Delay func(time.Duration)
	// Verbose prints backlight changes.
	Verbose bool
}

// NewSim wires a CST816S model at 0x15 and a BMA421 model at 0x18 to one bus,
// with a 240x240 framebuffer as the panel.
func NewSim(opts SimOptions) *Sim {
	touchIRQ := sim.NewPin(true)
	touchRst := sim.NewPin(true)
	accelIRQ := sim.NewPin(false)

	s := &Sim{
		Touch:     sim.NewTouch(touchIRQ, touchRst),
		Accel:     sim.NewAccel(accelIRQ),
		Frame:     sim.NewFramebuffer(240, 240),
		Cell:      sim.NewBattery(),
		Light:     sim.NewBacklight(opts.Verbose),
		TouchLine: touchIRQ,
		AccelLine: accelIRQ,
	}
	bus := sim.NewBus()
	bus.Attach(0x15, s.Touch)
	bus.Attach(0x18, s.Accel)

	s.Board = Board{
		Name:       "sim",
		I2C:        bus,
		TouchReset: touchRst,
		TouchIRQ:   touchIRQ,
		AccelIRQ:   accelIRQ,
		Panel:      s.Frame,
		Backlight:  s.Light,
		Battery:    s.Cell,
		Delay:      opts.Delay,
		Now:        opts.Now,
	}
	return s
}
