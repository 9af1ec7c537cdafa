package display

import "wristcore-go/x/mathx"

// Battery is the charge source shown by the meter.
type Battery interface {
	// Level is the charge in percent, 0..100.
	Level() int
	Charging() bool
}

// Meter geometry: a 24×32 cell in the top right corner.
const (
	meterW     = 24
	meterH     = 32
	meterX     = Width - 1 - meterW
	meterY     = 0
	meterNubW  = 8
	meterNubH  = 4
	meterBarX  = meterX + 4
	meterBarY  = meterY + 8
	meterBarW  = meterW - 8
	meterBarH  = 20
	lowBattery = 5
)

// meterCharging is the bucket shown while on the charger.
const meterCharging = -2

// Meter draws the battery gauge. It repaints only when the visible bucket
// (5% steps, or the charging state) changes.
type Meter struct {
	r      Renderer
	bat    Battery
	bg     Color
	bucket int // -1 unknown
	low    bool
}

func NewMeter(r Renderer, bat Battery, bg Color) *Meter {
	return &Meter{r: r, bat: bat, bg: bg, bucket: -1}
}

// Draw forgets the shown level and paints the gauge from scratch.
func (m *Meter) Draw() {
	m.bucket = -1
	m.Update()
}

// Update repaints the gauge if the level bucket changed and reports
// whether it did.
func (m *Meter) Update() bool {
	if m.bat == nil {
		return false
	}
	if m.bat.Charging() {
		if m.bucket == meterCharging {
			return false
		}
		m.frame(Grey)
		m.r.Fill(Cyan, meterBarX, meterBarY, meterBarW, meterBarH)
		m.bucket = meterCharging
		return true
	}

	level := mathx.Clamp(m.bat.Level(), 0, 100)
	bucket := level / 5
	low := level <= lowBattery
	if bucket == m.bucket && low == m.low {
		return false
	}
	if m.bucket < 0 || low != m.low {
		if low {
			m.frame(Red)
		} else {
			m.frame(Grey)
		}
	}
	m.low = low

	green := mathx.Clamp(level/3, 0, 31)
	c := Color(uint16(31-green)<<11 | uint16(green)<<6)
	if low {
		c = Red
	}
	h := int16(bucket * meterBarH / 20)
	m.r.Fill(m.bg, meterBarX, meterBarY, meterBarW, meterBarH-h)
	m.r.Fill(c, meterBarX, meterBarY+meterBarH-h, meterBarW, h)
	m.bucket = bucket
	return true
}

// Bucket returns the displayed bucket: 0..20, -1 unknown, -2 charging.
func (m *Meter) Bucket() int { return m.bucket }

func (m *Meter) frame(c Color) {
	m.r.Fill(m.bg, meterX, meterY, meterW, meterH)
	m.r.Fill(c, meterX+(meterW-meterNubW)/2, meterY, meterNubW, meterNubH)
	m.r.Fill(c, meterX, meterY+meterNubH, meterW, meterH-meterNubH)
	m.r.Fill(m.bg, meterX+2, meterY+meterNubH+2, meterW-4, meterH-meterNubH-4)
}
