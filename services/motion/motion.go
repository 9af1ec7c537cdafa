// Package motion owns the accelerometer: its configuration sequence, the
// step counter with its warm-up baseline, power gating and the wrist-raise
// gesture that wakes the watch.
package motion

import (
	"errors"
	"time"

	"wristcore-go/drivers/bma421"
	"wristcore-go/errcode"
	"wristcore-go/hal"
	"wristcore-go/types"
	"wristcore-go/x/irqslot"
)

// ErrNoFirmware means the feature engine is not running and no
// configuration file was supplied to start it.
var ErrNoFirmware = errors.New("motion: feature engine not running, no config file")

// WarmUpSteps seeds the step count after every reset.
const WarmUpSteps = 3

// Any-motion defaults: 2000 x 0.48 mg slope, one 20 ms sample.
const (
	DefaultAnyMotionThreshold = 2000
	DefaultAnyMotionDuration  = 1
)

// Config controls the capture. All fields are optional.
type Config struct {
	// Firmware is the feature engine configuration streamed after soft
	// reset. Nil selects bma421.ConfigFile. An empty non-nil slice skips the
	// upload; Reset then fails with NotReady unless the engine is running.
	Firmware []byte
	// Threshold and Duration default to the any-motion values above.
	Threshold uint16
	Duration  uint16
	// Now defaults to time.Now.
	Now func() time.Time
}

// Capture owns the accelerometer and the gesture state.
type Capture struct {
	dev *bma421.Device
	cfg Config
	det Detector

	steps       uint32
	poweredDown bool

	irq  hal.IRQPin
	slot *irqslot.Slot
}

func New(dev *bma421.Device, cfgs ...Config) *Capture {
	c := &Capture{dev: dev, slot: irqslot.New(), steps: WarmUpSteps}
	if len(cfgs) > 0 {
		c.cfg = cfgs[0]
	}
	if c.cfg.Firmware == nil {
		c.cfg.Firmware = bma421.ConfigFile()
	}
	if c.cfg.Threshold == 0 {
		c.cfg.Threshold = DefaultAnyMotionThreshold
	}
	if c.cfg.Duration == 0 {
		c.cfg.Duration = DefaultAnyMotionDuration
	}
	if c.cfg.Now == nil {
		c.cfg.Now = time.Now
	}
	return c
}

// Attach routes the INT1 line to HandleInterrupt. After that PollGesture
// only reads the bus when the line has fired.
func (c *Capture) Attach(irq hal.IRQPin) error {
	if err := irq.SetIRQ(hal.EdgeRising, c.HandleInterrupt); err != nil {
		return err
	}
	c.irq = irq
	return nil
}

// HandleInterrupt is the ISR body. It only marks the inbox; the status and
// sample reads happen in PollGesture.
func (c *Capture) HandleInterrupt() {
	var p irqslot.Payload
	c.slot.Put(&p)
	c.slot.Notify()
}

// Ready fires after the any-motion line was raised.
func (c *Capture) Ready() <-chan struct{} { return c.slot.Ready() }

// Reset runs the full configuration sequence. The hardware step counter
// restarts from zero and the reported count from WarmUpSteps.
func (c *Capture) Reset() error {
	d := c.dev
	seq := []struct {
		op string
		fn func() error
	}{
		{"soft_reset", d.SoftReset},
		{"i2c_watchdog", d.EnableI2CWatchdog},
		{"firmware", c.loadFirmware},
		{"accel_enable", func() error { return d.EnableAccel(true) }},
		{"accel_config", func() error {
			return d.SetAccelConfig(bma421.AccelConfig{
				ODR:       bma421.ODR100Hz,
				Bandwidth: bma421.BandwidthNormAvg,
				Perf:      bma421.PerfCICAvg,
				Range:     bma421.Range2G,
			})
		}},
		{"step_counter", func() error { return d.EnableFeatures(bma421.FeatureStepCounter, true) }},
		{"activity", func() error { return d.EnableFeatures(bma421.FeatureActivity, true) }},
		{"any_motion", func() error {
			return d.SetAnyMotion(bma421.AnyMotionConfig{
				Axes:      bma421.AxesAll,
				Threshold: c.cfg.Threshold,
				Duration:  c.cfg.Duration,
			})
		}},
		{"int1_map", func() error { return d.MapInterrupt(bma421.Int1, bma421.IntAnyMotion, true) }},
	}
	for _, s := range seq {
		if err := s.fn(); err != nil {
			if errors.Is(err, ErrNoFirmware) {
				return errcode.Wrap(errcode.NotReady, "motion.reset."+s.op, err)
			}
			return errcode.IO("motion.reset."+s.op, err)
		}
	}
	c.steps = WarmUpSteps
	c.poweredDown = false
	c.det.Reset()
	c.slot.Clear()
	return nil
}

func (c *Capture) loadFirmware() error {
	if len(c.cfg.Firmware) > 0 {
		return c.dev.LoadFirmware(c.cfg.Firmware)
	}
	ok, err := c.dev.FeaturesReady()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoFirmware
	}
	return nil
}

// Steps returns the warm-up baseline plus the hardware count. The value
// never decreases between resets; on a bus error the last value is returned.
func (c *Capture) Steps() uint32 {
	hw, err := c.dev.StepCount()
	if err != nil {
		return c.steps
	}
	if v := WarmUpSteps + hw; v > c.steps {
		c.steps = v
	}
	return c.steps
}

// ResetSteps zeroes the counter. The part has no separate counter reset, so
// this is a full Reset.
func (c *Capture) ResetSteps() error { return c.Reset() }

// SetSteps only accepts zero, which resets the counter.
func (c *Capture) SetSteps(v uint32) error {
	if v != 0 {
		return &errcode.E{C: errcode.InvalidArgument, Op: "motion.set_steps", Msg: "only 0 is accepted"}
	}
	return c.ResetSteps()
}

// PollGesture checks the any-motion flag and, if set, runs the detector on
// a fresh sample. Nothing is reported while powered down.
func (c *Capture) PollGesture() (types.WakeGesture, bool) {
	if c.poweredDown {
		return types.WakeGesture{}, false
	}
	if c.irq != nil {
		if _, ok := c.slot.Take(); !ok {
			return types.WakeGesture{}, false
		}
	}
	st, err := c.dev.IntStatus()
	if err != nil || st&bma421.IntAnyMotion == 0 {
		return types.WakeGesture{}, false
	}
	s, err := c.dev.ReadAccel()
	if err != nil {
		return types.WakeGesture{}, false
	}
	if !c.det.Observe(s) {
		return types.WakeGesture{}, false
	}
	return types.WakeGesture{TS: c.cfg.Now(), Y: s.Y}, true
}

// PowerDown stops the accelerometer.
func (c *Capture) PowerDown() error {
	if err := c.dev.EnableAccel(false); err != nil {
		return errcode.IO("motion.power_down", err)
	}
	c.poweredDown = true
	return nil
}

// PowerUp restarts the accelerometer.
func (c *Capture) PowerUp() error {
	if err := c.dev.EnableAccel(true); err != nil {
		return errcode.IO("motion.power_up", err)
	}
	c.poweredDown = false
	c.slot.Clear()
	return nil
}

// State returns a copy of the gesture state.
func (c *Capture) State() types.GestureState {
	return types.GestureState{
		StepCount:   c.steps,
		LastYAccel:  c.det.Anchor(),
		PoweredDown: c.poweredDown,
	}
}

// Close detaches the interrupt handler.
func (c *Capture) Close() error {
	if c.irq == nil {
		return nil
	}
	return c.irq.ClearIRQ()
}
