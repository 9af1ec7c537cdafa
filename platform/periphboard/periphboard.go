//go:build linux && !tinygo

// Package periphboard assembles a watch from a touch controller and an
// accelerometer wired to a Linux single-board computer. There is no panel;
// frames land in an in-memory framebuffer that the caller can dump.
package periphboard

import (
	"errors"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"wristcore-go/hal"
	"wristcore-go/platform"
	"wristcore-go/platform/sim"
)

var ErrNoPin = errors.New("periphboard: gpio not found")

// Config names the host resources. Empty pin names leave that line unused.
type Config struct {
	// I2C is the bus name for i2creg; "" opens the first bus.
	I2C        string
	TouchReset string
	TouchIRQ   string
	AccelIRQ   string
}

// Board is the opened board. Close releases the bus and stops the IRQ
// watchers.
type Board struct {
	platform.Board
	Frame *sim.Framebuffer

	bus  i2c.BusCloser
	irqs []*irqPin
}

// Open initialises periph and opens the configured resources.
func Open(cfg Config) (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	bus, err := i2creg.Open(cfg.I2C)
	if err != nil {
		return nil, err
	}
	b := &Board{Frame: sim.NewFramebuffer(240, 240), bus: bus}
	b.Board = platform.Board{
		Name:  "devboard",
		I2C:   bus,
		Panel: b.Frame,
	}

	rst, err := outputPin(cfg.TouchReset)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	b.TouchReset = rst

	if cfg.TouchIRQ != "" {
		p, err := b.irqPin(cfg.TouchIRQ, gpio.PullUp)
		if err != nil {
			_ = bus.Close()
			return nil, err
		}
		b.TouchIRQ = p
	}
	if cfg.AccelIRQ != "" {
		p, err := b.irqPin(cfg.AccelIRQ, gpio.PullDown)
		if err != nil {
			_ = bus.Close()
			return nil, err
		}
		b.AccelIRQ = p
	}
	return b, nil
}

func (b *Board) Close() error {
	for _, p := range b.irqs {
		_ = p.ClearIRQ()
	}
	return b.bus.Close()
}

// ---- GPIO ----

type outPin struct{ p gpio.PinIO }

func outputPin(name string) (hal.OutputPin, error) {
	if name == "" {
		return hal.PinFunc(func(bool) {}), nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, ErrNoPin
	}
	if err := p.Out(gpio.High); err != nil {
		return nil, err
	}
	return &outPin{p: p}, nil
}

func (o *outPin) Set(level bool) { _ = o.p.Out(gpio.Level(level)) }

// irqPin emulates an interrupt line with a goroutine blocked in
// WaitForEdge. The handler runs on that goroutine, one call at a time.
type irqPin struct {
	p    gpio.PinIO
	pull gpio.Pull

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func (b *Board) irqPin(name string, pull gpio.Pull) (*irqPin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, ErrNoPin
	}
	if err := p.In(pull, gpio.NoEdge); err != nil {
		return nil, err
	}
	ip := &irqPin{p: p, pull: pull}
	b.irqs = append(b.irqs, ip)
	return ip, nil
}

func (r *irqPin) Get() bool { return r.p.Read() == gpio.High }

func (r *irqPin) SetIRQ(edge hal.Edge, handler func()) error {
	if err := r.ClearIRQ(); err != nil {
		return err
	}
	if err := r.p.In(r.pull, toEdge(edge)); err != nil {
		return err
	}
	if edge == hal.EdgeNone || handler == nil {
		return nil
	}
	stop, done := make(chan struct{}), make(chan struct{})
	r.mu.Lock()
	r.stop, r.done = stop, done
	r.mu.Unlock()
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
			}
			if r.p.WaitForEdge(100 * time.Millisecond) {
				handler()
			}
		}
	}()
	return nil
}

func (r *irqPin) ClearIRQ() error {
	r.mu.Lock()
	stop, done := r.stop, r.done
	r.stop, r.done = nil, nil
	r.mu.Unlock()
	if stop == nil {
		return nil
	}
	close(stop)
	<-done
	return r.p.In(r.pull, gpio.NoEdge)
}

func toEdge(e hal.Edge) gpio.Edge {
	switch e {
	case hal.EdgeRising:
		return gpio.RisingEdge
	case hal.EdgeFalling:
		return gpio.FallingEdge
	case hal.EdgeBoth:
		return gpio.BothEdges
	default:
		return gpio.NoEdge
	}
}
