package display

import (
	"testing"

	"wristcore-go/platform/sim"
)

func lit(fb *sim.Framebuffer, x0, y0, x1, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c := fb.At(x, y); c.R|c.G|c.B != 0 {
				n++
			}
		}
	}
	return n
}

func TestDrawableFillAndClear(t *testing.T) {
	fb := sim.NewFramebuffer(Width, Height)
	d := NewDrawable(fb)

	d.Clear(Blue)
	if c := fb.At(239, 239); FromRGBA(c) != Blue {
		t.Fatalf("clear = %+v", c)
	}
	d.Fill(Red, 10, 10, 2, 3)
	if FromRGBA(fb.At(11, 12)) != Red || FromRGBA(fb.At(12, 12)) != Blue {
		t.Fatal("fill bounds")
	}
	d.Fill(Red, 0, 0, 0, 5) // empty
	if FromRGBA(fb.At(0, 0)) != Blue {
		t.Fatal("empty fill painted")
	}
}

func TestDrawableGlyphStaysInCell(t *testing.T) {
	fb := sim.NewFramebuffer(Width, Height)
	d := NewDrawable(fb)
	d.Clear(Black)

	d.BlitGlyph(Digit(8), 48, 80, White)
	if lit(fb, 48, 80, 48+GlyphW, 80+GlyphH) == 0 {
		t.Fatal("glyph drew nothing")
	}
	if lit(fb, 0, 0, Width, 80) != 0 || lit(fb, 0, 80+GlyphH, Width, Height) != 0 {
		t.Fatal("glyph leaked outside its row")
	}

	d.BlitGlyph(Glyph(42), 0, 0, White)
	if lit(fb, 0, 0, GlyphW, 80) != 0 {
		t.Fatal("unknown glyph drew")
	}
}

func TestDrawableTextClearsLine(t *testing.T) {
	fb := sim.NewFramebuffer(Width, Height)
	d := NewDrawable(fb)
	d.Clear(Red)

	d.DrawText("1 Mar 2026", 0, 180, Width)
	if lit(fb, 0, 180, Width, 180+TextLineH) == 0 {
		t.Fatal("text drew nothing")
	}
	// Edges of the line are cleared to the background.
	if FromRGBA(fb.At(0, 180)) != Black || FromRGBA(fb.At(239, 180+TextLineH-1)) != Black {
		t.Fatal("line not cleared")
	}
	if FromRGBA(fb.At(0, 179)) != Red {
		t.Fatal("cleared above the line")
	}
	if err := d.Flush(); err != nil {
		t.Fatal(err)
	}
}
