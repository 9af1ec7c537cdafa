// Package sim emulates the watch peripherals for host builds and tests:
// register-level CST816S and BMA421 models behind a shared I²C bus, GPIO
// pins with ISR-style callbacks, an in-memory panel and a drifting battery.
package sim

import (
	"sync"

	"wristcore-go/hal"
)

// Pin implements hal.OutputPin and hal.IRQPin.
type Pin struct {
	mu      sync.RWMutex
	level   bool
	irqEdge hal.Edge
	irqFunc func()
	onSet   func(old, level bool)
}

func NewPin(initial bool) *Pin { return &Pin{level: initial} }

// Set drives the level and runs the IRQ handler when the edge matches.
func (p *Pin) Set(level bool) {
	p.mu.Lock()
	old := p.level
	p.level = level
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edgeFrom(old, level))
	hook := p.onSet
	p.mu.Unlock()
	if hook != nil {
		hook(old, level)
	}
	if want && irq != nil {
		irq() // ISR-style callback
	}
}

func (p *Pin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

// Pulse drives an active-low interrupt line low then high again.
func (p *Pin) Pulse() {
	p.Set(false)
	p.Set(true)
}

func (p *Pin) SetIRQ(edge hal.Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *Pin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = hal.EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

// watch registers a hook run on every Set (used by device models that
// observe their reset line).
func (p *Pin) watch(f func(old, level bool)) {
	p.mu.Lock()
	p.onSet = f
	p.mu.Unlock()
}

func edgeFrom(old, level bool) hal.Edge {
	switch {
	case !old && level:
		return hal.EdgeRising
	case old && !level:
		return hal.EdgeFalling
	default:
		return hal.EdgeNone
	}
}

func irqWanted(cfg, got hal.Edge) bool {
	if got == hal.EdgeNone {
		return false
	}
	return cfg == hal.EdgeBoth || cfg == got
}
