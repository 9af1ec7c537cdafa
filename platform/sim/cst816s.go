package sim

import (
	"sync"

	"wristcore-go/types"
)

// Touch models a CST816S: a six byte report at register 0x01, deep sleep on
// 0xA5=0x03 and wake only through the reset line.
type Touch struct {
	mu     sync.Mutex
	raw    types.RawTouch
	asleep bool
	fail   bool
	resets int

	irq *Pin
}

// NewTouch wires the model to its interrupt and reset lines.
func NewTouch(irq, rst *Pin) *Touch {
	t := &Touch{irq: irq}
	rst.watch(func(old, level bool) {
		if !old && level {
			t.mu.Lock()
			t.asleep = false
			t.resets++
			t.mu.Unlock()
		}
	})
	return t
}

func (t *Touch) Tx(w, r []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fail || t.asleep || len(w) == 0 {
		return ErrNack
	}
	switch {
	case len(w) == 2 && w[0] == 0xA5:
		if w[1] == 0x03 {
			t.asleep = true
		}
		return nil
	case w[0] == 0x01 && len(r) > 0:
		copy(r, t.raw[:])
		return nil
	}
	for i := range r {
		r[i] = 0
	}
	return nil
}

// Report latches a raw report and pulses the interrupt line if awake.
func (t *Touch) Report(raw types.RawTouch) {
	t.mu.Lock()
	t.raw = raw
	awake := !t.asleep
	t.mu.Unlock()
	if awake && t.irq != nil {
		t.irq.Pulse()
	}
}

// Tap reports a single touch at (x, y).
func (t *Touch) Tap(x, y uint16) {
	t.Report(Raw(types.PhaseTap, x, y, false))
}

// Raw encodes a report the way the controller lays it out.
func Raw(phase types.Phase, x, y uint16, swipeStart bool) types.RawTouch {
	xh := byte(x>>8) & 0x0F
	if swipeStart {
		xh |= 0x80
	}
	return types.RawTouch{byte(phase), 1, xh, byte(x), byte(y>>8) & 0x0F, byte(y)}
}

// SetFail makes every transaction NACK.
func (t *Touch) SetFail(fail bool) {
	t.mu.Lock()
	t.fail = fail
	t.mu.Unlock()
}

func (t *Touch) Asleep() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.asleep
}

func (t *Touch) Resets() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resets
}
