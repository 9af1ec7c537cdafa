// Package mainloop is the cooperative scheduler: one goroutine that drives
// the foreground app from the tick timer and the touch and motion inputs,
// blanks the panel when idle and wakes it on touch-less wrist raises.
package mainloop

import (
	"context"
	"time"

	"wristcore-go/hal"
	"wristcore-go/types"
	"wristcore-go/x/ramp"
	"wristcore-go/x/timex"
)

// App is the scheduler surface of the foreground application.
type App interface {
	Foreground(now time.Time) time.Duration
	Background()
	Sleep() bool
	Tick(now time.Time) bool
	Touch(ev types.TouchEvent, now time.Time) bool
	Wake(now time.Time) bool
}

// Touch is the touch capture as seen by the loop.
type Touch interface {
	PollOrReceive() (types.TouchEvent, bool)
	Acknowledge()
	Sleep() error
	Wake() error
	Ready() <-chan struct{}
}

// Motion is the motion capture as seen by the loop.
type Motion interface {
	PollGesture() (types.WakeGesture, bool)
	Ready() <-chan struct{}
}

// Config for New. Zero fields take the defaults below.
type Config struct {
	// Poll is how often the inputs are polled when they have no interrupt
	// line. Default 100 ms.
	Poll time.Duration
	// BlankAfter is the idle time before the panel is blanked. Default 15 s.
	BlankAfter time.Duration

	Backlight hal.Backlight
	// Level is the awake brightness; default 2 of Max (default 3).
	Level uint8
	Max   uint8
	Fade  time.Duration
	Delay hal.Delay

	Now func() time.Time
}

// Loop owns the inputs and the foreground app.
type Loop struct {
	app    App
	touch  Touch
	motion Motion
	cfg    Config

	tick     time.Duration
	asleep   bool
	dropped  bool // app went to the background on blank
	idleFrom time.Time
	level    uint8
}

func New(app App, touch Touch, motion Motion, cfgs ...Config) *Loop {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Poll <= 0 {
		c.Poll = 100 * time.Millisecond
	}
	if c.BlankAfter <= 0 {
		c.BlankAfter = 15 * time.Second
	}
	if c.Max == 0 {
		c.Max = 3
	}
	if c.Level == 0 || c.Level > c.Max {
		c.Level = c.Max - 1
		if c.Level == 0 {
			c.Level = c.Max
		}
	}
	if c.Delay == nil {
		c.Delay = hal.Sleep
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return &Loop{app: app, touch: touch, motion: motion, cfg: c}
}

// Asleep reports whether the panel is blanked.
func (l *Loop) Asleep() bool { return l.asleep }

// Start brings the app to the foreground and the backlight up.
func (l *Loop) Start(now time.Time) {
	l.tick = l.app.Foreground(now)
	if l.tick <= 0 {
		l.tick = time.Second
	}
	l.idleFrom = now
	l.fade(l.cfg.Level)
}

// Run starts the app and dispatches until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	l.Start(l.cfg.Now())
	tick := time.NewTimer(l.tick)
	poll := time.NewTimer(l.cfg.Poll)
	defer tick.Stop()
	defer poll.Stop()

	var touchC, motionC <-chan struct{}
	if l.touch != nil {
		touchC = l.touch.Ready()
	}
	if l.motion != nil {
		motionC = l.motion.Ready()
	}

	for {
		select {
		case <-ctx.Done():
			l.app.Background()
			return ctx.Err()
		case <-tick.C:
			l.OnTick(l.cfg.Now())
			timex.ResetTimer(tick, l.tick)
		case <-poll.C:
			now := l.cfg.Now()
			l.OnTouch(now)
			l.OnMotion(now)
			timex.ResetTimer(poll, l.cfg.Poll)
		case <-touchC:
			l.OnTouch(l.cfg.Now())
		case <-motionC:
			l.OnMotion(l.cfg.Now())
		}
	}
}

// OnTick runs the app tick and blanks the panel once idle.
func (l *Loop) OnTick(now time.Time) {
	if l.asleep {
		return
	}
	l.app.Tick(now)
	if now.Sub(l.idleFrom) >= l.cfg.BlankAfter {
		l.blank()
	}
}

// OnTouch delivers at most one touch event to the app.
func (l *Loop) OnTouch(now time.Time) {
	if l.asleep || l.touch == nil {
		return
	}
	ev, ok := l.touch.PollOrReceive()
	if !ok {
		return
	}
	l.idleFrom = now
	l.app.Touch(ev, now)
	l.touch.Acknowledge()
}

// OnMotion wakes a blanked panel on a wrist raise.
func (l *Loop) OnMotion(now time.Time) {
	if l.motion == nil {
		return
	}
	if _, ok := l.motion.PollGesture(); !ok {
		return
	}
	l.idleFrom = now
	if l.asleep {
		l.wake(now)
	}
}

func (l *Loop) blank() {
	if !l.app.Sleep() {
		l.app.Background()
		l.dropped = true
	}
	l.fade(0)
	if l.touch != nil {
		if err := l.touch.Sleep(); err != nil {
			println("[mainloop] touch sleep failed:", err.Error())
		}
	}
	l.asleep = true
	println("[mainloop] blank")
}

func (l *Loop) wake(now time.Time) {
	if l.touch != nil {
		if err := l.touch.Wake(); err != nil {
			println("[mainloop] touch wake failed:", err.Error())
		}
	}
	l.asleep = false
	if l.dropped {
		l.dropped = false
		l.tick = l.app.Foreground(now)
	} else {
		l.app.Wake(now)
	}
	l.fade(l.cfg.Level)
	println("[mainloop] wake")
}

func (l *Loop) fade(to uint8) {
	if l.cfg.Backlight == nil {
		l.level = to
		return
	}
	tick := func(d time.Duration) bool { l.cfg.Delay(d); return true }
	ramp.Linear(l.level, to, l.cfg.Max, l.cfg.Fade, 4, tick, func(v uint8) {
		l.level = v
		l.cfg.Backlight.SetLevel(v)
	})
}
