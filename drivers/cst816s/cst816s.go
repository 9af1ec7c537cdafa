// Package cst816s provides a driver for the Hynitron CST816S capacitive touch
// controller.
//
//	d := cst816s.New(bus, resetPin)
//	d.Reset()             // timed reset sequence (blocks ~55 ms)
//	var raw types.RawTouch
//	err := d.Read(&raw)   // six status/coordinate bytes
//
// The controller only answers on the bus shortly after it raised its
// interrupt line; reads at other times NACK, which callers must treat as
// "no new data".
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when both
// w and r are provided, without releasing the bus.
package cst816s

import (
	"time"

	"wristcore-go/hal"
	"wristcore-go/types"
)

// I2C address.
const Address = 0x15

// Registers and commands.
const (
	regGestureID = 0x01 // first of six bytes: gesture, points, xh, xl, yh, yl
	regSleep     = 0xA5

	sleepDeepMode = 0x03
)

// Reset timings are a hardware contract: a shorter low pulse or boot wait can
// leave the controller unable to assert new interrupts.
const (
	ResetLowTime = 5 * time.Millisecond
	BootTime     = 50 * time.Millisecond
)

// Bit layout inside the raw sample.
const (
	SwipeStartBit = 0x80 // in the x-high byte
	coordHighMask = 0x0F
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x15 if zero.
	Address uint16
	// Delay defaults to hal.Sleep.
	Delay hal.Delay
}

// Device wraps an I2C connection to a CST816S.
type Device struct {
	bus   hal.I2C
	rst   hal.OutputPin
	addr  uint16
	delay hal.Delay

	w  [2]byte // reuse buffer to avoid allocations
	rd [1]byte // read pointer, set once; Read runs in ISR context
}

// New creates a Device. It does not touch the hardware.
func New(bus hal.I2C, rst hal.OutputPin, cfgs ...Config) *Device {
	d := &Device{bus: bus, rst: rst, addr: Address, delay: hal.Sleep}
	d.rd[0] = regGestureID
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.Address != 0 {
			d.addr = c.Address
		}
		if c.Delay != nil {
			d.delay = c.Delay
		}
	}
	return d
}

// Reset pulses the reset line low for ResetLowTime, then waits BootTime for
// the controller firmware to come up. Callers must not interleave bus traffic
// with this sequence.
func (d *Device) Reset() {
	d.rst.Set(false)
	d.delay(ResetLowTime)
	d.rst.Set(true)
	d.delay(BootTime)
}

// Read fetches the six status/coordinate bytes into out. Any bus error is
// returned as-is. Safe to call from an interrupt handler.
func (d *Device) Read(out *types.RawTouch) error {
	return d.bus.Tx(d.addr, d.rd[:], out[:])
}

// Sleep resets the controller and puts it into deep sleep. Only a further
// Reset wakes it.
func (d *Device) Sleep() error {
	d.Reset()
	d.w[0] = regSleep
	d.w[1] = sleepDeepMode
	return d.bus.Tx(d.addr, d.w[:2], nil)
}

// ---- Raw sample decoding ----

// Decode extracts the event fields from a raw sample. Coordinates are 12-bit:
// the low nibble of the high byte followed by the low byte.
func Decode(raw *types.RawTouch) (ev types.TouchEvent, swipeStart bool) {
	ev.Phase = types.Phase(raw[0])
	ev.X = uint16(raw[2]&coordHighMask)<<8 | uint16(raw[3])
	ev.Y = uint16(raw[4]&coordHighMask)<<8 | uint16(raw[5])
	return ev, raw[2]&SwipeStartBit != 0
}
