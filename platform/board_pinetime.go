// platform/board_pinetime.go
//go:build tinygo && nrf52

package platform

import (
	"machine"

	"tinygo.org/x/drivers/st7789"

	"wristcore-go/drivers/bma421"
	"wristcore-go/hal"
)

// PineTime pin map.
const (
	pinTouchSDA   = machine.Pin(6)
	pinTouchSCL   = machine.Pin(7)
	pinAccelIRQ   = machine.Pin(8)
	pinTouchReset = machine.Pin(10)
	pinCharging   = machine.Pin(12) // low while on the charger
	pinTouchIRQ   = machine.Pin(28)
	pinBatteryADC = machine.Pin(31)

	pinBacklightLow  = machine.Pin(14)
	pinBacklightMid  = machine.Pin(22)
	pinBacklightHigh = machine.Pin(23)

	pinLCDSCK   = machine.Pin(2)
	pinLCDSDO   = machine.Pin(3)
	pinLCDSDI   = machine.Pin(4)
	pinLCDDC    = machine.Pin(18)
	pinLCDCS    = machine.Pin(25)
	pinLCDReset = machine.Pin(26)
)

// PineTime configures the watch peripherals and returns the board.
func PineTime() *Board {
	i2c := machine.I2C1
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       pinTouchSDA,
		SCL:       pinTouchSCL,
	}); err != nil {
		println("[platform] i2c1 configure failed:", err.Error())
	}

	if err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8 * machine.MHz,
		SCK:       pinLCDSCK,
		SDO:       pinLCDSDO,
		SDI:       pinLCDSDI,
		Mode:      3,
	}); err != nil {
		println("[platform] spi0 configure failed:", err.Error())
	}
	lcd := st7789.New(machine.SPI0, pinLCDReset, pinLCDDC, pinLCDCS, machine.NoPin)
	lcd.Configure(st7789.Config{
		Width:    240,
		Height:   240,
		Rotation: st7789.NO_ROTATION,
	})

	bl := newBacklight(pinBacklightLow, pinBacklightMid, pinBacklightHigh)
	bl.SetLevel(0)

	return &Board{
		Name:       "pinetime",
		I2C:        i2c,
		TouchReset: output(pinTouchReset, true),
		TouchIRQ:   input(pinTouchIRQ, machine.PinInputPullup),
		AccelIRQ:   input(pinAccelIRQ, machine.PinInput),
		Panel:      &lcd,
		Backlight:  bl,
		Battery:    newBattery(pinBatteryADC, pinCharging),
		Firmware:   bma421.ConfigFile(),
	}
}

// ---- GPIO ----

type pin struct{ p machine.Pin }

func output(p machine.Pin, initial bool) *pin {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Set(initial)
	return &pin{p: p}
}

func input(p machine.Pin, mode machine.PinMode) *pin {
	p.Configure(machine.PinConfig{Mode: mode})
	return &pin{p: p}
}

func (r *pin) Set(level bool) { r.p.Set(level) }
func (r *pin) Get() bool      { return r.p.Get() }

// SetIRQ runs handler from the GPIOTE interrupt.
func (r *pin) SetIRQ(edge hal.Edge, handler func()) error {
	return r.p.SetInterrupt(toPinChange(edge), func(machine.Pin) { handler() })
}

func (r *pin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}

func toPinChange(e hal.Edge) machine.PinChange {
	switch e {
	case hal.EdgeRising:
		return machine.PinRising
	case hal.EdgeFalling:
		return machine.PinFalling
	case hal.EdgeBoth:
		return machine.PinToggle
	default:
		var zero machine.PinChange
		return zero
	}
}

// ---- Backlight ----

// backlight drives the three active-low enable lines; level 1..3 selects
// one of them, 0 turns all off.
type backlight struct {
	lines [3]machine.Pin
}

func newBacklight(low, mid, high machine.Pin) *backlight {
	b := &backlight{lines: [3]machine.Pin{low, mid, high}}
	for _, p := range b.lines {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}
	return b
}

func (b *backlight) SetLevel(level uint8) {
	for i, p := range b.lines {
		p.Set(int(level) != i+1)
	}
}

// ---- Battery ----

type battery struct {
	adc    machine.ADC
	charge machine.Pin
}

func newBattery(sense, charging machine.Pin) *battery {
	machine.InitADC()
	adc := machine.ADC{Pin: sense}
	adc.Configure(machine.ADCConfig{})
	charging.Configure(machine.PinConfig{Mode: machine.PinInput})
	return &battery{adc: adc, charge: charging}
}

// Level converts the halved cell voltage (3.3 V reference, 16-bit scale).
func (b *battery) Level() int {
	mv := int(b.adc.Get()) * 6600 / 65535
	return hal.BatteryLevel(mv)
}

func (b *battery) Charging() bool { return !b.charge.Get() }
