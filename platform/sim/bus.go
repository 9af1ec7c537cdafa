package sim

import (
	"errors"
	"sync"
)

// ErrNack is returned for an address with no device or a device that is not
// answering.
var ErrNack = errors.New("sim: i2c nack")

// Target is one device model on the bus.
type Target interface {
	Tx(w, r []byte) error
}

// Bus routes transactions by address; it implements drivers.I2C.
type Bus struct {
	mu      sync.Mutex
	targets map[uint16]Target
}

func NewBus() *Bus { return &Bus{targets: map[uint16]Target{}} }

// Attach places t at addr, replacing any previous model.
func (b *Bus) Attach(addr uint16, t Target) {
	b.mu.Lock()
	b.targets[addr] = t
	b.mu.Unlock()
}

func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	t := b.targets[addr]
	b.mu.Unlock()
	if t == nil {
		return ErrNack
	}
	return t.Tx(w, r)
}
