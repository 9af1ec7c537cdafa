package sim

import (
	"sync"

	"wristcore-go/hal"
)

// Battery drifts between 3.4 V and 4.0 V: slow discharge, then a faster
// charge once the simulated charger is plugged in.
type Battery struct {
	mu      sync.Mutex
	mv      int
	step    int
	powered bool
}

func NewBattery() *Battery { return &Battery{mv: 3900, step: -10} }

func (b *Battery) advance() int {
	switch {
	case b.mv > 4000:
		b.step = -10
		b.powered = false
	case b.mv < 3400:
		b.step = 40
		b.powered = true
	}
	b.mv += b.step
	return b.mv
}

// VoltageMV advances the model and returns the cell voltage.
func (b *Battery) VoltageMV() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.advance()
}

// Level maps the voltage to 0..100 percent.
func (b *Battery) Level() int {
	return hal.BatteryLevel(b.VoltageMV())
}

func (b *Battery) Charging() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.powered
}
