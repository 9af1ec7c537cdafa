package display

import (
	"wristcore-go/types"
	"wristcore-go/x/conv"
)

// Digital layout: HH:MM in five glyph cells on one row, date underneath.
const (
	digitRow = 80
	dateRow  = 180
)

func (e *Engine) refreshDigital(s types.ClockSnapshot) bool {
	o := e.snap
	if s.Hour == o.Hour && s.Minute == o.Minute {
		// Only the seconds moved: nothing on the face shows them, so the
		// battery meter is the only candidate for a redraw.
		if s.Second != o.Second {
			e.meter.Update()
			e.snap = s
		}
		return false
	}

	mt, mu := conv.Digits(s.Minute)
	ht, hu := conv.Digits(s.Hour)
	e.r.BlitGlyph(Digit(mu), 4*GlyphW, digitRow, e.style.Foreground)
	e.r.BlitGlyph(Digit(mt), 3*GlyphW, digitRow, e.style.DimDigit)
	e.r.BlitGlyph(Digit(hu), 1*GlyphW, digitRow, e.style.Foreground)
	e.r.BlitGlyph(Digit(ht), 0*GlyphW, digitRow, e.style.DimDigit)

	e.buf = conv.AppendDate(e.buf[:0], s.Day, s.Month, s.Year)
	e.r.DrawText(string(e.buf), 0, dateRow, Width)

	e.snap = s
	e.meter.Update()
	return true
}
