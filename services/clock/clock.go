// Package clock is the watch face application: a digital HH:MM face with
// the date, or an analog face with a bezel, plus the battery meter.
package clock

import (
	"time"

	"wristcore-go/services/display"
	"wristcore-go/types"
)

// Name is shown by launchers.
const Name = "Clock"

// Flusher pushes a finished frame to the panel.
type Flusher interface {
	Flush() error
}

// Config for New. All fields are optional.
type Config struct {
	// Tick defaults to one second.
	Tick time.Duration
	// Flush is called after every redraw.
	Flush Flusher
}

// App owns the refresh engine while it is in the foreground.
type App struct {
	eng   *display.Engine
	tick  time.Duration
	flush Flusher

	foreground bool
}

func New(eng *display.Engine, cfgs ...Config) *App {
	a := &App{eng: eng, tick: time.Second}
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.Tick > 0 {
			a.tick = c.Tick
		}
		a.flush = c.Flush
	}
	return a
}

func (a *App) Name() string { return Name }

// Face returns the active face.
func (a *App) Face() display.Face { return a.eng.Face() }

// Foreground draws the face from scratch and returns the tick period the
// app wants.
func (a *App) Foreground(now time.Time) time.Duration {
	a.foreground = true
	a.eng.FullRepaint()
	a.eng.Refresh(now)
	a.commit()
	return a.tick
}

// Background forgets the picture; the next Foreground repaints.
func (a *App) Background() {
	a.foreground = false
	a.eng.Discard()
}

// Sleep reports whether the app can stay resident while the panel is off.
func (a *App) Sleep() bool { return true }

// Tick updates the face.
func (a *App) Tick(now time.Time) bool { return a.update(now) }

// Wake updates the face after the panel comes back on.
func (a *App) Wake(now time.Time) bool { return a.update(now) }

// Touch switches between the digital and analog faces. Swipes belong to
// the system and are left alone.
func (a *App) Touch(ev types.TouchEvent, now time.Time) bool {
	if !a.foreground || ev.Phase.IsSwipe() {
		return false
	}
	a.eng.SetFace(a.eng.Face().Toggle())
	a.eng.Refresh(now)
	a.commit()
	return true
}

func (a *App) update(now time.Time) bool {
	if !a.foreground {
		return false
	}
	if !a.eng.Refresh(now) {
		return false
	}
	a.commit()
	return true
}

func (a *App) commit() {
	if a.flush == nil {
		return
	}
	if err := a.flush.Flush(); err != nil {
		println("[clock] flush failed:", err.Error())
	}
}
