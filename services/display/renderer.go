package display

// Panel geometry.
const (
	Width  = 240
	Height = 240
)

// Glyph identifies one of the large clock glyphs.
type Glyph uint8

const (
	GlyphColon Glyph = 10
	numGlyphs        = 11
)

// Digit returns the glyph for 0..9.
func Digit(n int) Glyph { return Glyph(n % 10) }

// Large glyph cell.
const (
	GlyphW = 48
	GlyphH = 64
)

// Renderer is the pixel sink the engine draws through. Implementations
// clip to the panel.
type Renderer interface {
	// Fill paints a w×h rectangle.
	Fill(c Color, x, y, w, h int16)
	// Clear paints the whole panel.
	Clear(c Color)
	// BlitGlyph paints a full GlyphW×GlyphH cell, background included.
	BlitGlyph(g Glyph, x, y int16, fg Color)
	// DrawText paints s centred in a line of the given width, clearing the
	// rest of the line.
	DrawText(s string, x, y, width int16)
}
