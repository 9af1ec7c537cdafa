// Package display renders the clock faces and keeps them up to date with
// the least possible pixel traffic.
//
// The Engine remembers the last rendered instant (a ClockSnapshot). A full
// repaint draws the static chrome and forgets the snapshot; each Refresh
// then compares the new instant against the snapshot and redraws only the
// elements that differ.
package display

import (
	"time"

	"wristcore-go/types"
)

// Face selects the clock layout.
type Face uint8

const (
	FaceDigital Face = iota
	FaceAnalog
)

func (f Face) String() string {
	if f == FaceAnalog {
		return "analog"
	}
	return "digital"
}

// ParseFace maps a config string to a Face; anything unknown is digital.
func ParseFace(s string) Face {
	if s == "analog" {
		return FaceAnalog
	}
	return FaceDigital
}

// Toggle returns the other face.
func (f Face) Toggle() Face {
	if f == FaceAnalog {
		return FaceDigital
	}
	return FaceAnalog
}

// State of the engine's picture.
type State uint8

const (
	Uninitialized State = iota // nothing trustworthy on screen
	Painted                    // chrome drawn, snapshot tracks dynamic content
)

// Config for New. All fields are optional.
type Config struct {
	Face    Face
	Style   Style // zero value means DefaultStyle
	Battery Battery
}

// Engine is owned by the foreground app; it is not safe for concurrent use.
type Engine struct {
	r     Renderer
	face  Face
	style Style
	state State
	snap  types.ClockSnapshot
	meter *Meter

	// analog scratch, reused across refreshes
	paths  [numHands][]point
	old    [numHands][]point
	damage pixelSet
	buf    []byte
}

func New(r Renderer, cfgs ...Config) *Engine {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Style == (Style{}) {
		c.Style = DefaultStyle()
	}
	c.Style.normalize()
	return &Engine{
		r:     r,
		face:  c.Face,
		style: c.Style,
		snap:  types.UnknownSnapshot,
		meter: NewMeter(r, c.Battery, c.Style.Background),
		buf:   make([]byte, 0, 16),
	}
}

func (e *Engine) Face() Face                    { return e.face }
func (e *Engine) State() State                  { return e.state }
func (e *Engine) Snapshot() types.ClockSnapshot { return e.snap }
func (e *Engine) Meter() *Meter                 { return e.meter }

// FullRepaint clears the panel, draws the face chrome and the battery meter,
// and forgets the snapshot so the next Refresh draws every element.
func (e *Engine) FullRepaint() {
	e.r.Clear(e.style.Background)
	switch e.face {
	case FaceDigital:
		e.r.BlitGlyph(GlyphColon, 2*GlyphW, digitRow, e.style.Colon)
	case FaceAnalog:
		if e.style.Bezel {
			e.drawBezel()
		}
	}
	e.meter.Draw()
	e.snap = types.UnknownSnapshot
	e.state = Painted
}

// Refresh brings the face up to now and reports whether anything was
// redrawn. An Uninitialized engine is fully repainted first.
func (e *Engine) Refresh(now time.Time) bool {
	if e.state == Uninitialized {
		e.FullRepaint()
	}
	s := types.SnapshotOf(now)
	if e.face == FaceAnalog {
		return e.refreshAnalog(s)
	}
	return e.refreshDigital(s)
}

// SetFace switches layout; the panel is always fully repainted.
func (e *Engine) SetFace(f Face) {
	e.face = f
	e.FullRepaint()
}

// Discard forgets the picture, e.g. when the app leaves the foreground.
func (e *Engine) Discard() {
	e.state = Uninitialized
	e.snap = types.UnknownSnapshot
}
