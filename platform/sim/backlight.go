package sim

import "sync"

// Backlight records the level the panel was last driven to.
type Backlight struct {
	mu      sync.Mutex
	level   uint8
	changes int
	verbose bool
}

// NewBacklight returns a backlight; verbose models print every change.
func NewBacklight(verbose bool) *Backlight { return &Backlight{verbose: verbose} }

func (b *Backlight) SetLevel(level uint8) {
	b.mu.Lock()
	changed := b.level != level
	b.level = level
	if changed {
		b.changes++
	}
	b.mu.Unlock()
	if changed && b.verbose {
		println("[sim] backlight", level)
	}
}

func (b *Backlight) Level() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level
}

// Changes counts level transitions.
func (b *Backlight) Changes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.changes
}
