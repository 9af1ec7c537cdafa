package sim

import (
	"sync"

	"wristcore-go/types"
)

// Accel models the subset of a BMA421 the driver touches: register file,
// feature page window, firmware upload, step counter and the any-motion
// interrupt.
type Accel struct {
	mu        sync.Mutex
	regs      [128]byte
	feat      [64]byte
	sample    types.AccelSample
	steps     uint32
	intStatus byte
	fail      bool
	resets    int
	firmware  int
	initMode  bool // INIT_CTRL=0 seen; feature window takes firmware

	irq *Pin
}

func NewAccel(irq *Pin) *Accel { return &Accel{irq: irq} }

func (a *Accel) Tx(w, r []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fail || len(w) == 0 {
		return ErrNack
	}
	reg := w[0]
	if len(r) > 0 {
		a.read(reg, r)
		return nil
	}
	a.write(reg, w[1:])
	return nil
}

func (a *Accel) read(reg byte, r []byte) {
	switch reg {
	case 0x00:
		r[0] = 0x11
	case 0x12:
		put12 := func(i int, v int32) {
			u := uint16(int16(v) << 4)
			r[i] = byte(u)
			r[i+1] = byte(u >> 8)
		}
		put12(0, a.sample.X)
		put12(2, a.sample.Y)
		put12(4, a.sample.Z)
	case 0x1C:
		r[0] = a.intStatus
		a.intStatus = 0
	case 0x1E:
		r[0], r[1], r[2], r[3] = byte(a.steps), byte(a.steps>>8), byte(a.steps>>16), byte(a.steps>>24)
	case 0x5E:
		copy(r, a.feat[:])
	default:
		copy(r, a.regs[reg:])
	}
}

func (a *Accel) write(reg byte, data []byte) {
	if len(data) == 0 {
		return
	}
	switch reg {
	case 0x7E:
		if data[0] == 0xB6 {
			a.regs = [128]byte{}
			a.feat = [64]byte{}
			a.steps = 0
			a.intStatus = 0
			a.firmware = 0
			a.initMode = false
			a.resets++
		}
	case 0x5E:
		if a.initMode {
			a.firmware += len(data)
			return
		}
		copy(a.feat[:], data)
	case 0x59:
		a.regs[0x59] = data[0]
		a.initMode = data[0] == 0x00
		if data[0] == 0x01 {
			a.regs[0x2A] = 0x01
		}
	default:
		copy(a.regs[reg:], data)
	}
}

// Move latches a new sample, raises the any-motion status when configured
// and pulses the interrupt line.
func (a *Accel) Move(s types.AccelSample) {
	a.mu.Lock()
	a.sample = s
	armed := a.regs[0x56]&0x20 != 0 && a.regs[0x7D]&0x04 != 0
	if armed {
		a.intStatus |= 0x20
	}
	a.mu.Unlock()
	if armed && a.irq != nil {
		a.irq.Pulse()
	}
}

// Walk adds n steps to the hardware counter when the feature is enabled.
func (a *Accel) Walk(n uint32) {
	a.mu.Lock()
	if a.feat[0x3B]&0x10 != 0 {
		a.steps += n
	}
	a.mu.Unlock()
}

func (a *Accel) SetFail(fail bool) {
	a.mu.Lock()
	a.fail = fail
	a.mu.Unlock()
}

// Reg returns a raw register value.
func (a *Accel) Reg(reg byte) byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.regs[reg]
}

// Feature returns a byte of the feature page.
func (a *Accel) Feature(off int) byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.feat[off]
}

func (a *Accel) Resets() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.resets
}

// FirmwareBytes reports how many firmware bytes were streamed since reset.
func (a *Accel) FirmwareBytes() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.firmware
}
