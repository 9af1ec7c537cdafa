// Package platform describes the hardware a watch is assembled from. Each
// target (the PineTime, the host simulator, a Linux dev board) fills a Board
// with its transport, pins, panel and power sources.
package platform

import (
	"time"

	"tinygo.org/x/drivers"

	"wristcore-go/hal"
)

// Board is the set of peripherals the watch services are built on. Nil
// optional fields mean the target lacks that part.
type Board struct {
	Name string

	// I2C is shared by the touch controller and the accelerometer.
	I2C hal.I2C

	TouchReset hal.OutputPin
	TouchIRQ   hal.IRQPin // optional
	AccelIRQ   hal.IRQPin // optional

	Panel     drivers.Displayer
	Backlight hal.Backlight // optional
	Battery   hal.Battery   // optional

	// Delay is used for reset and settle waits; nil means hal.Sleep.
	Delay hal.Delay
	// Now is the wall clock; nil means time.Now.
	Now func() time.Time

	// Firmware is the BMA421 feature engine configuration; nil selects
	// bma421.ConfigFile.
	Firmware []byte
}

// Clock returns b.Now or time.Now.
func (b *Board) Clock() func() time.Time {
	if b.Now != nil {
		return b.Now
	}
	return time.Now
}
