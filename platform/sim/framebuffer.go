package sim

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.Displayer = (*Framebuffer)(nil)

// Framebuffer is an in-memory panel. It counts pixel writes so tests and the
// simulator can see how much work a frame cost.
type Framebuffer struct {
	mu      sync.Mutex
	img     *image.RGBA
	w, h    int16
	writes  int
	flushes int
}

func NewFramebuffer(w, h int16) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, int(w), int(h))), w: w, h: h}
}

func (f *Framebuffer) Size() (x, y int16) { return f.w, f.h }

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.mu.Lock()
	f.img.SetRGBA(int(x), int(y), c)
	f.writes++
	f.mu.Unlock()
}

// FillRectangle clips to the panel.
func (f *Framebuffer) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if i < 0 || j < 0 || i >= f.w || j >= f.h {
				continue
			}
			f.img.SetRGBA(int(i), int(j), c)
			f.writes++
		}
	}
	return nil
}

func (f *Framebuffer) Display() error {
	f.mu.Lock()
	f.flushes++
	f.mu.Unlock()
	return nil
}

// At returns the colour at (x, y).
func (f *Framebuffer) At(x, y int) color.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.img.RGBAAt(x, y)
}

// Writes returns and resets the pixel write counter.
func (f *Framebuffer) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.writes
	f.writes = 0
	return n
}

// WritePNG encodes the current frame.
func (f *Framebuffer) WritePNG(w io.Writer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return png.Encode(w, f.img)
}
