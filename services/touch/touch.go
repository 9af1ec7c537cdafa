// services/touch/touch.go

// Package touch turns raw CST816S reports into debounced touch events.
//
// A Capture runs in one of two modes. In poll mode every PollOrReceive reads
// the controller over the bus. In interrupt mode the controller's interrupt
// line runs HandleInterrupt, which copies the report into a single-slot
// inbox; PollOrReceive then drains the inbox and never touches the bus.
//
// A delivered event is held until Acknowledge, so a caller that did not get
// round to handling it sees the same event again on the next call.
package touch

import (
	"sync/atomic"

	"wristcore-go/drivers/cst816s"
	"wristcore-go/hal"
	"wristcore-go/types"
	"wristcore-go/x/irqslot"
)

// Mode selects how reports reach the capture.
type Mode uint8

const (
	ModePoll Mode = iota
	ModeInterrupt
)

func (m Mode) String() string {
	if m == ModeInterrupt {
		return "interrupt"
	}
	return "poll"
}

// ParseMode maps a config string to a Mode; anything unknown is poll.
func ParseMode(s string) Mode {
	if s == "interrupt" || s == "irq" {
		return ModeInterrupt
	}
	return ModePoll
}

// Capture owns the controller and its dedup state.
type Capture struct {
	dev  *cst816s.Device
	mode Mode
	slot *irqslot.Slot
	irq  hal.IRQPin

	enabled atomic.Bool

	pending    types.TouchEvent
	hasPending bool
	last       types.TouchEvent // dedup key

	isr  types.RawTouch // ISR read buffer
	poll types.RawTouch
}

// New builds a poll mode capture. The controller is assumed to be out of
// reset; call Wake first if not.
func New(dev *cst816s.Device) *Capture {
	c := &Capture{dev: dev, mode: ModePoll, slot: irqslot.New()}
	c.enabled.Store(true)
	return c
}

// NewInterrupt builds an interrupt mode capture and attaches HandleInterrupt
// to the falling edge of irq.
func NewInterrupt(dev *cst816s.Device, irq hal.IRQPin) (*Capture, error) {
	c := New(dev)
	c.mode = ModeInterrupt
	c.irq = irq
	if err := irq.SetIRQ(hal.EdgeFalling, c.HandleInterrupt); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Capture) Mode() Mode { return c.mode }

// Ready fires after the ISR stored a report. Poll mode captures never fire.
func (c *Capture) Ready() <-chan struct{} { return c.slot.Ready() }

// Enabled reports whether events are being delivered.
func (c *Capture) Enabled() bool { return c.enabled.Load() }

// HandleInterrupt is the ISR body: one bus read into a fixed buffer and a
// store into the inbox. It must not log, allocate or block.
func (c *Capture) HandleInterrupt() {
	if !c.enabled.Load() {
		return
	}
	if c.dev.Read(&c.isr) != nil {
		return
	}
	c.slot.Put((*irqslot.Payload)(&c.isr))
	c.slot.Notify()
}

// ingest fetches the next raw report from the bus or the inbox.
func (c *Capture) ingest() (types.RawTouch, bool) {
	if c.mode == ModeInterrupt {
		p, ok := c.slot.Take()
		return types.RawTouch(p), ok
	}
	if c.dev.Read(&c.poll) != nil {
		return types.RawTouch{}, false
	}
	return c.poll, true
}

// PollOrReceive returns the pending touch event, if any. Bus failures, junk
// reports, swipe starts and repeats of the last delivered event all yield
// false.
func (c *Capture) PollOrReceive() (types.TouchEvent, bool) {
	if !c.enabled.Load() {
		return types.TouchEvent{}, false
	}
	if c.hasPending {
		return c.pending, true
	}
	raw, ok := c.ingest()
	if !ok || raw[0] == byte(types.PhaseNone) {
		return types.TouchEvent{}, false
	}
	ev, swipeStart := cst816s.Decode(&raw)
	if swipeStart {
		// Start of a new motion: forget the last event so the swipe itself
		// is delivered even if it repeats an earlier one.
		c.last = types.TouchEvent{X: ev.X, Y: ev.Y}
		return types.TouchEvent{}, false
	}
	if ev == c.last {
		return types.TouchEvent{}, false
	}
	c.last = ev
	c.pending = ev
	c.hasPending = true
	return ev, true
}

// Pending reports whether an unacknowledged event is held.
func (c *Capture) Pending() bool { return c.hasPending }

// Acknowledge marks the held event as handled and drops any report still in
// the inbox.
func (c *Capture) Acknowledge() {
	c.hasPending = false
	c.pending = types.TouchEvent{}
	c.slot.Clear()
}

// Sleep puts the controller into deep sleep and stops delivery. A pending
// event is dropped.
func (c *Capture) Sleep() error {
	c.enabled.Store(false)
	c.Acknowledge()
	return c.dev.Sleep()
}

// Wake resets the controller out of deep sleep and resumes delivery. The
// first report after a reset is a new touch, so the dedup key is dropped.
func (c *Capture) Wake() error {
	c.dev.Reset()
	c.slot.Clear()
	c.last = types.TouchEvent{}
	c.enabled.Store(true)
	return nil
}

// Overruns counts ISR reports replaced before the loop took them.
func (c *Capture) Overruns() uint32 { return c.slot.Overruns() }

// Close detaches the interrupt handler.
func (c *Capture) Close() error {
	if c.irq == nil {
		return nil
	}
	return c.irq.ClearIRQ()
}
