package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

// Baselines inside a glyph cell and a text line.
const (
	glyphBaseline = 50
	TextLineH     = 28
	textBaseline  = 20
)

const glyphRunes = "0123456789:"

// rectFiller is implemented by panels with an accelerated fill (st7789 and
// the sim framebuffer).
type rectFiller interface {
	FillRectangle(x, y, w, h int16, c color.RGBA) error
}

// Drawable renders onto a drivers.Displayer with tinyfont glyphs.
type Drawable struct {
	d      drivers.Displayer
	fill   rectFiller
	bg, fg Color

	digits tinyfont.Fonter
	text   tinyfont.Fonter
	adv    [numGlyphs]int16 // glyph ink widths, for centring
}

// NewDrawable draws white on black.
func NewDrawable(d drivers.Displayer) *Drawable {
	dr := &Drawable{
		d:      d,
		bg:     Black,
		fg:     White,
		digits: &freesans.Bold24pt7b,
		text:   &freesans.Regular12pt7b,
	}
	dr.fill, _ = d.(rectFiller)
	for i := range dr.adv {
		w, _ := tinyfont.LineWidth(dr.digits, glyphRunes[i:i+1])
		dr.adv[i] = int16(w)
	}
	return dr
}

// SetColors changes the default foreground and the background.
func (dr *Drawable) SetColors(fg, bg Color) { dr.fg, dr.bg = fg, bg }

func (dr *Drawable) Fill(c Color, x, y, w, h int16) {
	if w <= 0 || h <= 0 {
		return
	}
	rgba := c.ToRGBA()
	if dr.fill != nil {
		_ = dr.fill.FillRectangle(x, y, w, h, rgba)
		return
	}
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			dr.d.SetPixel(i, j, rgba)
		}
	}
}

func (dr *Drawable) Clear(c Color) {
	w, h := dr.d.Size()
	dr.Fill(c, 0, 0, w, h)
}

func (dr *Drawable) BlitGlyph(g Glyph, x, y int16, fg Color) {
	if g >= numGlyphs {
		return
	}
	dr.Fill(dr.bg, x, y, GlyphW, GlyphH)
	off := (GlyphW - dr.adv[g]) / 2
	if off < 0 {
		off = 0
	}
	tinyfont.DrawChar(dr.d, dr.digits, x+off, y+glyphBaseline, rune(glyphRunes[g]), fg.ToRGBA())
}

func (dr *Drawable) DrawText(s string, x, y, width int16) {
	dr.Fill(dr.bg, x, y, width, TextLineH)
	w, _ := tinyfont.LineWidth(dr.text, s)
	off := (width - int16(w)) / 2
	if off < 0 {
		off = 0
	}
	tinyfont.WriteLine(dr.d, dr.text, x+off, y+textBaseline, s, dr.fg.ToRGBA())
}

// Flush pushes a buffered frame to the panel.
func (dr *Drawable) Flush() error { return dr.d.Display() }
