// Package config resolves the per-device watch settings from embedded JSON
// documents.
package config

import (
	"encoding/json"
	"time"

	"wristcore-go/errcode"
	"wristcore-go/services/display"
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Hand is one analog hand. Color is RGB565.
type Hand struct {
	Length int    `json:"length"`
	Width  int    `json:"width"`
	Color  uint16 `json:"color"`
}

// Palette colours are RGB565.
type Palette struct {
	Background uint16  `json:"background"`
	Foreground *uint16 `json:"foreground"`
	Colon      uint16  `json:"colon"`
	DimDigit   uint16  `json:"dim_digit"`
	BezelMajor uint16  `json:"bezel_major"`
	BezelMinor uint16  `json:"bezel_minor"`
}

type Hands struct {
	Second Hand `json:"second"`
	Minute Hand `json:"minute"`
	Hour   Hand `json:"hour"`
}

type Backlight struct {
	Level  uint8 `json:"level"`
	Max    uint8 `json:"max"`
	FadeMS int   `json:"fade_ms"`
}

type Motion struct {
	Threshold uint16 `json:"threshold"`
	Duration  uint16 `json:"duration"`
	Interrupt bool   `json:"interrupt"`
}

// Watch is the decoded settings document.
type Watch struct {
	Face        string    `json:"face"`
	TouchMode   string    `json:"touch_mode"`
	TickMS      int       `json:"tick_ms"`
	BlankAfterS int       `json:"blank_after_s"`
	Bezel       *bool     `json:"bezel"`
	Palette     Palette   `json:"palette"`
	Hands       Hands     `json:"hands"`
	Backlight   Backlight `json:"backlight"`
	Motion      Motion    `json:"motion"`
}

// Load decodes the embedded document for device and fills defaults.
func Load(device string) (Watch, error) {
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return Watch{}, &errcode.E{C: errcode.UnknownDevice, Op: "config.load", Msg: "no embedded config for device: " + device}
	}
	return Decode(raw)
}

// Decode parses a settings document and fills defaults for zero fields.
func Decode(raw []byte) (Watch, error) {
	var w Watch
	if err := json.Unmarshal(raw, &w); err != nil {
		return Watch{}, errcode.Wrap(errcode.InvalidArgument, "config.decode", err)
	}
	w.applyDefaults()
	return w, nil
}

func (w *Watch) applyDefaults() {
	def := display.DefaultStyle()
	if w.Face == "" {
		w.Face = "digital"
	}
	if w.TouchMode == "" {
		w.TouchMode = "poll"
	}
	if w.TickMS <= 0 {
		w.TickMS = 1000
	}
	if w.BlankAfterS <= 0 {
		w.BlankAfterS = 15
	}
	if w.Bezel == nil {
		b := true
		w.Bezel = &b
	}
	p := &w.Palette
	if p.Foreground == nil {
		fg := uint16(def.Foreground)
		p.Foreground = &fg
	}
	if p.Colon == 0 {
		p.Colon = uint16(def.Colon)
	}
	if p.DimDigit == 0 {
		p.DimDigit = uint16(def.DimDigit)
	}
	if p.BezelMajor == 0 {
		p.BezelMajor = uint16(def.BezelMajor)
	}
	if p.BezelMinor == 0 {
		p.BezelMinor = uint16(def.BezelMinor)
	}
	fillHand(&w.Hands.Second, def.Second)
	fillHand(&w.Hands.Minute, def.Minute)
	fillHand(&w.Hands.Hour, def.Hour)
	if w.Backlight.Max == 0 {
		w.Backlight.Max = 3
	}
	if w.Backlight.Level == 0 || w.Backlight.Level > w.Backlight.Max {
		w.Backlight.Level = w.Backlight.Max
	}
	if w.Backlight.FadeMS < 0 {
		w.Backlight.FadeMS = 0
	}
}

func fillHand(h *Hand, def display.HandStyle) {
	if h.Length <= 0 {
		h.Length = def.Length
	}
	if h.Length > display.MaxHandLength {
		h.Length = display.MaxHandLength
	}
	if h.Width <= 0 {
		h.Width = int(def.Width)
	}
	if h.Color == 0 {
		h.Color = uint16(def.Color)
	}
}

// Tick is the refresh period.
func (w Watch) Tick() time.Duration { return time.Duration(w.TickMS) * time.Millisecond }

// BlankAfter is the idle time before the panel is blanked.
func (w Watch) BlankAfter() time.Duration { return time.Duration(w.BlankAfterS) * time.Second }

// Fade is the backlight ramp time.
func (w Watch) Fade() time.Duration { return time.Duration(w.Backlight.FadeMS) * time.Millisecond }

// Style converts the palette and hands to a display style.
func (w Watch) Style() display.Style {
	hs := func(h Hand) display.HandStyle {
		return display.HandStyle{Length: h.Length, Width: int16(h.Width), Color: display.Color(h.Color)}
	}
	fg := display.White
	if w.Palette.Foreground != nil {
		fg = display.Color(*w.Palette.Foreground)
	}
	return display.Style{
		Background: display.Color(w.Palette.Background),
		Foreground: fg,
		Colon:      display.Color(w.Palette.Colon),
		DimDigit:   display.Color(w.Palette.DimDigit),
		Second:     hs(w.Hands.Second),
		Minute:     hs(w.Hands.Minute),
		Hour:       hs(w.Hands.Hour),
		Bezel:      w.Bezel == nil || *w.Bezel,
		BezelMajor: display.Color(w.Palette.BezelMajor),
		BezelMinor: display.Color(w.Palette.BezelMinor),
	}
}

// FaceKind returns the configured face.
func (w Watch) FaceKind() display.Face { return display.ParseFace(w.Face) }
