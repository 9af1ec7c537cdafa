package motion

import (
	"errors"
	"testing"
	"time"

	"wristcore-go/drivers/bma421"
	"wristcore-go/errcode"
	"wristcore-go/platform/sim"
	"wristcore-go/types"
)

func down(y int32) types.AccelSample { return types.AccelSample{X: 0, Y: y, Z: -300} }

func TestDetectorRaiseSequence(t *testing.T) {
	var d Detector
	seq := []int32{-50, -100, -150, -400}
	for i, y := range seq {
		got := d.Observe(down(y))
		want := i == len(seq)-1
		if got != want {
			t.Fatalf("sample %d (y=%d): fired=%v want %v", i, y, got, want)
		}
	}
	if d.Anchor() != -400 {
		t.Fatalf("anchor = %d", d.Anchor())
	}
}

func TestDetectorNonNegativeYResets(t *testing.T) {
	var d Detector
	d.Observe(down(-300))
	// x and z outside the window do not matter for the reset.
	if d.Observe(types.AccelSample{X: 900, Y: 5, Z: 100}) {
		t.Fatal("fired on y >= 0")
	}
	if d.Anchor() != 0 {
		t.Fatalf("anchor = %d, want 0", d.Anchor())
	}
	if !d.Observe(down(-231)) {
		t.Fatal("drop of 231 from 0 should fire")
	}
}

func TestDetectorWindowLeavesAnchor(t *testing.T) {
	cases := []struct {
		name string
		s    types.AccelSample
	}{
		{"x too large", types.AccelSample{X: 336, Y: -900, Z: -10}},
		{"z not negative", types.AccelSample{X: 0, Y: -900, Z: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Detector
			d.Observe(down(-100))
			if d.Observe(tc.s) {
				t.Fatal("fired outside window")
			}
			if d.Anchor() != -100 {
				t.Fatalf("anchor = %d, want -100", d.Anchor())
			}
		})
	}
}

func TestDetectorBoundary(t *testing.T) {
	var d Detector
	if d.Observe(down(-230)) {
		t.Fatal("drop of exactly 230 must not fire")
	}
	var e Detector
	if !e.Observe(types.AccelSample{X: 335, Y: -231, Z: -1}) {
		t.Fatal("x at the window edge should fire")
	}
}

type rig struct {
	acc *sim.Accel
	irq *sim.Pin
	cap *Capture
}

var epoch = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func newRig(t *testing.T, cfg Config) *rig {
	t.Helper()
	irq := sim.NewPin(true)
	acc := sim.NewAccel(irq)
	bus := sim.NewBus()
	bus.Attach(bma421.AddressDefault, acc)
	dev := bma421.New(bus, bma421.Config{Delay: func(time.Duration) {}})
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return epoch }
	}
	c := New(dev, cfg)
	if err := c.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	return &rig{acc: acc, irq: irq, cap: c}
}

func TestResetConfiguresSensor(t *testing.T) {
	r := newRig(t, Config{})
	checks := []struct {
		name      string
		got, want byte
	}{
		{"ACC_CONF", r.acc.Reg(0x40), 0x28},
		{"ACC_RANGE", r.acc.Reg(0x41), 0x00},
		{"NV_CONF", r.acc.Reg(0x70), 0x06},
		{"PWR_CTRL", r.acc.Reg(0x7D), 0x04},
		{"INT1_MAP", r.acc.Reg(0x56), 0x20},
		{"any-motion thr lo", r.acc.Feature(0), 0xD0},
		{"any-motion thr hi", r.acc.Feature(1), 0x07},
		{"any-motion dur lo", r.acc.Feature(2), 0x01},
		{"any-motion axes", r.acc.Feature(3), 0xE0},
		{"feature enable", r.acc.Feature(0x3B), 0x30},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %#x, want %#x", c.name, c.got, c.want)
		}
	}
	if r.acc.Resets() != 1 {
		t.Fatalf("resets = %d", r.acc.Resets())
	}
}

func TestResetUploadsFirmware(t *testing.T) {
	r := newRig(t, Config{Firmware: make([]byte, 100)})
	if r.acc.FirmwareBytes() != 100 {
		t.Fatalf("firmware bytes = %d", r.acc.FirmwareBytes())
	}
}

func TestResetUploadsBundledConfig(t *testing.T) {
	r := newRig(t, Config{})
	if r.acc.FirmwareBytes() != bma421.ConfigFileSize {
		t.Fatalf("firmware bytes = %d, want %d", r.acc.FirmwareBytes(), bma421.ConfigFileSize)
	}
}

func TestResetWithoutConfigIsNotReady(t *testing.T) {
	acc := sim.NewAccel(sim.NewPin(false))
	bus := sim.NewBus()
	bus.Attach(bma421.AddressDefault, acc)
	dev := bma421.New(bus, bma421.Config{Delay: func(time.Duration) {}})
	c := New(dev, Config{Firmware: []byte{}})

	err := c.Reset()
	if errcode.Of(err) != errcode.NotReady || !errors.Is(err, ErrNoFirmware) {
		t.Fatalf("err = %v, want NotReady", err)
	}
	if acc.FirmwareBytes() != 0 {
		t.Fatalf("firmware bytes = %d", acc.FirmwareBytes())
	}
}

func TestResetWrapsBusError(t *testing.T) {
	r := newRig(t, Config{})
	r.acc.SetFail(true)
	err := r.cap.Reset()
	if !errors.Is(err, errcode.TransientIO) {
		t.Fatalf("err = %v", err)
	}
	if !errors.Is(err, sim.ErrNack) {
		t.Fatalf("cause lost: %v", err)
	}
}

func TestStepsBaselineAndMonotonic(t *testing.T) {
	r := newRig(t, Config{})
	if got := r.cap.Steps(); got != WarmUpSteps {
		t.Fatalf("steps after reset = %d", got)
	}
	r.acc.Walk(10)
	if got := r.cap.Steps(); got != WarmUpSteps+10 {
		t.Fatalf("steps = %d", got)
	}
	r.acc.SetFail(true)
	if got := r.cap.Steps(); got != WarmUpSteps+10 {
		t.Fatalf("steps on bus error = %d", got)
	}
	r.acc.SetFail(false)

	if err := r.cap.ResetSteps(); err != nil {
		t.Fatal(err)
	}
	if got := r.cap.Steps(); got != WarmUpSteps {
		t.Fatalf("steps after ResetSteps = %d", got)
	}
	if r.acc.Resets() != 2 {
		t.Fatalf("ResetSteps must soft reset, resets = %d", r.acc.Resets())
	}
}

func TestSetSteps(t *testing.T) {
	r := newRig(t, Config{})
	r.acc.Walk(7)
	err := r.cap.SetSteps(5)
	if errcode.Of(err) != errcode.InvalidArgument {
		t.Fatalf("SetSteps(5) err = %v", err)
	}
	if got := r.cap.Steps(); got != WarmUpSteps+7 {
		t.Fatalf("rejected SetSteps changed count: %d", got)
	}
	if err := r.cap.SetSteps(0); err != nil {
		t.Fatal(err)
	}
	if got := r.cap.Steps(); got != WarmUpSteps {
		t.Fatalf("steps = %d", got)
	}
}

func TestPollGestureFiresOnRaise(t *testing.T) {
	r := newRig(t, Config{})
	var fired []types.WakeGesture
	for _, y := range []int32{-50, -100, -150, -400} {
		r.acc.Move(down(y))
		if g, ok := r.cap.PollGesture(); ok {
			fired = append(fired, g)
		}
	}
	if len(fired) != 1 {
		t.Fatalf("fired %d times", len(fired))
	}
	if fired[0].Y != -400 || !fired[0].TS.Equal(epoch) {
		t.Fatalf("gesture = %+v", fired[0])
	}
	if r.cap.State().LastYAccel != -400 {
		t.Fatalf("state = %+v", r.cap.State())
	}
}

func TestPollGestureNeedsAnyMotionFlag(t *testing.T) {
	r := newRig(t, Config{})
	r.acc.Move(down(-50))
	r.cap.PollGesture()
	if _, ok := r.cap.PollGesture(); ok {
		t.Fatal("fired without a new any-motion flag")
	}
}

func TestPowerDownSuppressesGesture(t *testing.T) {
	r := newRig(t, Config{})
	if err := r.cap.PowerDown(); err != nil {
		t.Fatal(err)
	}
	if !r.cap.State().PoweredDown || r.acc.Reg(0x7D)&0x04 != 0 {
		t.Fatal("accelerometer still enabled")
	}
	r.acc.Move(down(-50))
	r.acc.Move(down(-400))
	if _, ok := r.cap.PollGesture(); ok {
		t.Fatal("gesture while powered down")
	}
	if err := r.cap.PowerUp(); err != nil {
		t.Fatal(err)
	}
	r.acc.Move(down(-400))
	if _, ok := r.cap.PollGesture(); !ok {
		t.Fatal("no gesture after power up")
	}
}

func TestInterruptModeSkipsBusUntilLineFires(t *testing.T) {
	r := newRig(t, Config{})
	if err := r.cap.Attach(r.irq); err != nil {
		t.Fatal(err)
	}
	defer r.cap.Close()

	r.acc.Move(down(-400))
	select {
	case <-r.cap.Ready():
	default:
		t.Fatal("no notification")
	}
	if _, ok := r.cap.PollGesture(); !ok {
		t.Fatal("expected gesture")
	}
	r.acc.SetFail(true)
	if _, ok := r.cap.PollGesture(); ok {
		t.Fatal("gesture without interrupt")
	}
}
