// services/watch/watch.go

// Package watch assembles the runtime from a board and its settings: the
// touch and motion captures, the renderer, the clock app and the main loop.
package watch

import (
	"context"

	"wristcore-go/drivers/bma421"
	"wristcore-go/drivers/cst816s"
	"wristcore-go/platform"
	"wristcore-go/services/clock"
	"wristcore-go/services/config"
	"wristcore-go/services/display"
	"wristcore-go/services/mainloop"
	"wristcore-go/services/motion"
	"wristcore-go/services/touch"
)

// Watch holds the assembled services. Fields are exported for tools that
// want to inspect state; only Loop.Run should drive them.
type Watch struct {
	Settings config.Watch

	Touch    *touch.Capture
	Motion   *motion.Capture
	Drawable *display.Drawable
	Engine   *display.Engine
	App      *clock.App
	Loop     *mainloop.Loop
}

// Build wires the services to b. The touch controller is reset and the
// accelerometer configured before it returns; an accelerometer failure is
// logged and leaves wrist-raise wake disabled until the next Reset.
func Build(b *platform.Board, w config.Watch) (*Watch, error) {
	tdev := cst816s.New(b.I2C, b.TouchReset, cst816s.Config{Delay: b.Delay})
	var (
		tc  *touch.Capture
		err error
	)
	if touch.ParseMode(w.TouchMode) == touch.ModeInterrupt && b.TouchIRQ != nil {
		if tc, err = touch.NewInterrupt(tdev, b.TouchIRQ); err != nil {
			return nil, err
		}
	} else {
		tc = touch.New(tdev)
	}
	if err := tc.Wake(); err != nil {
		return nil, err
	}

	adev := bma421.New(b.I2C, bma421.Config{Delay: b.Delay})
	mc := motion.New(adev, motion.Config{
		Firmware:  b.Firmware,
		Threshold: w.Motion.Threshold,
		Duration:  w.Motion.Duration,
		Now:       b.Clock(),
	})
	if err := mc.Reset(); err != nil {
		println("[watch] accelerometer reset failed:", err.Error())
	}
	if w.Motion.Interrupt && b.AccelIRQ != nil {
		if err := mc.Attach(b.AccelIRQ); err != nil {
			return nil, err
		}
	}

	style := w.Style()
	dr := display.NewDrawable(b.Panel)
	dr.SetColors(style.Foreground, style.Background)
	eng := display.New(dr, display.Config{
		Face:    w.FaceKind(),
		Style:   style,
		Battery: b.Battery,
	})
	app := clock.New(eng, clock.Config{Tick: w.Tick(), Flush: dr})

	loop := mainloop.New(app, tc, mc, mainloop.Config{
		BlankAfter: w.BlankAfter(),
		Backlight:  b.Backlight,
		Level:      w.Backlight.Level,
		Max:        w.Backlight.Max,
		Fade:       w.Fade(),
		Delay:      b.Delay,
		Now:        b.Clock(),
	})

	return &Watch{
		Settings: w,
		Touch:    tc,
		Motion:   mc,
		Drawable: dr,
		Engine:   eng,
		App:      app,
		Loop:     loop,
	}, nil
}

// Run drives the loop until ctx ends, then detaches the interrupt handlers.
func (w *Watch) Run(ctx context.Context) error {
	defer w.Close()
	return w.Loop.Run(ctx)
}

// Close detaches the interrupt handlers.
func (w *Watch) Close() error {
	err := w.Touch.Close()
	if merr := w.Motion.Close(); err == nil {
		err = merr
	}
	return err
}
