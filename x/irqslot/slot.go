// Package irqslot provides a single-slot inbox written from interrupt context
// and drained from the cooperative main loop.
//
// The payload (up to six bytes) is packed with a valid bit into one 64-bit
// word, so Put is a single atomic swap: no branches, no allocation, no lock.
// Take is an atomic swap with zero, which makes read-then-clear indivisible
// from the writer's point of view. A Put that lands before the previous
// payload was taken replaces it and is counted as an overrun.
package irqslot

import "sync/atomic"

const validBit = uint64(1) << 63

// Payload is the fixed-size content of a slot.
type Payload [6]byte

type Slot struct {
	w        atomic.Uint64
	overruns atomic.Uint32
	notify   chan struct{}
}

func New() *Slot {
	return &Slot{notify: make(chan struct{}, 1)}
}

func pack(p *Payload) uint64 {
	return validBit |
		uint64(p[0]) | uint64(p[1])<<8 | uint64(p[2])<<16 |
		uint64(p[3])<<24 | uint64(p[4])<<32 | uint64(p[5])<<40
}

func unpack(v uint64) (p Payload) {
	p[0] = byte(v)
	p[1] = byte(v >> 8)
	p[2] = byte(v >> 16)
	p[3] = byte(v >> 24)
	p[4] = byte(v >> 32)
	p[5] = byte(v >> 40)
	return p
}

// Put publishes p. Safe to call from an ISR.
func (s *Slot) Put(p *Payload) {
	old := s.w.Swap(pack(p))
	s.overruns.Add(uint32(old >> 63))
}

// Notify wakes a loop blocked on Ready. It never blocks.
func (s *Slot) Notify() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Ready fires after Notify; the slot may still be empty if already drained.
func (s *Slot) Ready() <-chan struct{} { return s.notify }

// Take returns and clears the pending payload.
func (s *Slot) Take() (Payload, bool) {
	v := s.w.Swap(0)
	if v&validBit == 0 {
		return Payload{}, false
	}
	return unpack(v), true
}

// Pending reports whether a payload is waiting, without consuming it.
func (s *Slot) Pending() bool { return s.w.Load()&validBit != 0 }

// Clear drops any pending payload.
func (s *Slot) Clear() { s.w.Store(0) }

// Overruns counts payloads replaced before they were taken.
func (s *Slot) Overruns() uint32 { return s.overruns.Load() }
