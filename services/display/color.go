package display

import "image/color"

// Color is an RGB565 pixel value, the panel's native format.
type Color uint16

// Palette used by the clock faces.
const (
	Black    Color = 0x0000
	White    Color = 0xffff
	Red      Color = 0xf800
	Yellow   Color = 0xffe0
	Green    Color = 0x07e0
	Cyan     Color = 0x07ff
	Blue     Color = 0x001f
	Magenta  Color = 0xf81f
	Grey     Color = 0x7bef
	Colon    Color = 0xb5b6
	DimDigit Color = 0xbdb6
)

// ToRGBA expands to 8 bits per channel, replicating the high bits into the
// low ones so white stays 0xff.
func (c Color) ToRGBA() color.RGBA {
	r := uint8(c>>11) & 0x1f
	g := uint8(c>>5) & 0x3f
	b := uint8(c) & 0x1f
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xff,
	}
}

// FromRGBA packs an 8-bit colour into RGB565.
func FromRGBA(c color.RGBA) Color {
	return Color(uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3))
}

// RGB565 builds a colour from 5/6/5 bit components.
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r&0x1f)<<11 | uint16(g&0x3f)<<5 | uint16(b&0x1f))
}
