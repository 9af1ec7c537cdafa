package display

import (
	"testing"
	"time"

	"wristcore-go/types"
)

type glyphOp struct {
	g    Glyph
	x, y int16
	fg   Color
}

type textOp struct {
	s           string
	x, y, width int16
}

// grid is a recording renderer with a pixel model.
type grid struct {
	px     [Height][Width]Color
	fills  int
	clears int
	glyphs []glyphOp
	texts  []textOp
}

func (g *grid) Fill(c Color, x, y, w, h int16) {
	g.fills++
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if i >= 0 && j >= 0 && i < Width && j < Height {
				g.px[j][i] = c
			}
		}
	}
}

func (g *grid) Clear(c Color) {
	g.clears++
	for j := range g.px {
		for i := range g.px[j] {
			g.px[j][i] = c
		}
	}
}

func (g *grid) BlitGlyph(gl Glyph, x, y int16, fg Color) {
	g.glyphs = append(g.glyphs, glyphOp{gl, x, y, fg})
}

func (g *grid) DrawText(s string, x, y, width int16) {
	g.texts = append(g.texts, textOp{s, x, y, width})
}

func (g *grid) ops() int { return g.fills + g.clears + len(g.glyphs) + len(g.texts) }

func (g *grid) resetOps() {
	g.fills, g.clears = 0, 0
	g.glyphs, g.texts = nil, nil
}

type fakeBattery struct {
	level    int
	charging bool
}

func (b *fakeBattery) Level() int     { return b.level }
func (b *fakeBattery) Charging() bool { return b.charging }

func at(h, m, s int) time.Time { return time.Date(2026, time.March, 1, h, m, s, 0, time.UTC) }

func TestDigitalRefreshDrawsDigitsAndDate(t *testing.T) {
	g := &grid{}
	e := New(g, Config{Battery: &fakeBattery{level: 80}})
	if !e.Refresh(at(10, 7, 5)) {
		t.Fatal("first refresh must draw")
	}
	want := []glyphOp{
		{GlyphColon, 96, 80, Colon},
		{7, 192, 80, White},
		{0, 144, 80, DimDigit},
		{0, 48, 80, White},
		{1, 0, 80, DimDigit},
	}
	if len(g.glyphs) != len(want) {
		t.Fatalf("glyphs = %+v", g.glyphs)
	}
	for i := range want {
		if g.glyphs[i] != want[i] {
			t.Errorf("glyph %d = %+v, want %+v", i, g.glyphs[i], want[i])
		}
	}
	if len(g.texts) != 1 || g.texts[0] != (textOp{"1 Mar 2026", 0, 180, 240}) {
		t.Fatalf("texts = %+v", g.texts)
	}
	if g.clears != 1 {
		t.Fatalf("clears = %d", g.clears)
	}
	if e.State() != Painted || e.Snapshot() != types.SnapshotOf(at(10, 7, 5)) {
		t.Fatalf("state=%v snap=%+v", e.State(), e.Snapshot())
	}
}

func TestRefreshIdempotent(t *testing.T) {
	for _, face := range []Face{FaceDigital, FaceAnalog} {
		t.Run(face.String(), func(t *testing.T) {
			g := &grid{}
			e := New(g, Config{Face: face, Battery: &fakeBattery{level: 50}})
			now := at(23, 59, 30)
			e.Refresh(now)
			g.resetOps()
			if e.Refresh(now) {
				t.Fatal("second refresh reported a redraw")
			}
			if g.ops() != 0 {
				t.Fatalf("second refresh issued %d ops", g.ops())
			}
		})
	}
}

func TestDigitalSecondsOnlyTouchesMeter(t *testing.T) {
	g := &grid{}
	bat := &fakeBattery{level: 80}
	e := New(g, Config{Battery: bat})
	e.Refresh(at(10, 7, 5))
	g.resetOps()

	bat.level = 50
	if e.Refresh(at(10, 7, 6)) {
		t.Fatal("seconds tick must not report a redraw")
	}
	if len(g.glyphs) != 0 || len(g.texts) != 0 {
		t.Fatalf("digits redrawn: %+v %+v", g.glyphs, g.texts)
	}
	if g.fills == 0 {
		t.Fatal("meter not updated")
	}
	if e.Snapshot().Second != 6 {
		t.Fatalf("snapshot = %+v", e.Snapshot())
	}
}

func TestFullRepaintForcesRedraw(t *testing.T) {
	g := &grid{}
	e := New(g)
	now := at(8, 0, 0)
	e.Refresh(now)
	e.FullRepaint()
	if e.Snapshot() != types.UnknownSnapshot {
		t.Fatal("full repaint must forget the snapshot")
	}
	g.resetOps()
	if !e.Refresh(now) {
		t.Fatal("refresh after full repaint must draw")
	}
	if len(g.glyphs) != 4 {
		t.Fatalf("glyphs = %d", len(g.glyphs))
	}
}

func TestDiscardReturnsToUninitialized(t *testing.T) {
	g := &grid{}
	e := New(g)
	now := at(9, 30, 0)
	e.Refresh(now)
	e.Discard()
	if e.State() != Uninitialized || e.Snapshot().Known() {
		t.Fatalf("state=%v snap=%+v", e.State(), e.Snapshot())
	}
	g.resetOps()
	if !e.Refresh(now) {
		t.Fatal("refresh after discard must draw")
	}
	if g.clears != 1 {
		t.Fatalf("clears = %d, want a full repaint", g.clears)
	}
}

func TestSetFaceRepaints(t *testing.T) {
	g := &grid{}
	e := New(g)
	e.Refresh(at(12, 0, 0))
	g.resetOps()

	e.SetFace(FaceAnalog)
	if e.Face() != FaceAnalog || g.clears != 1 || e.Snapshot().Known() {
		t.Fatalf("face=%v clears=%d snap=%+v", e.Face(), g.clears, e.Snapshot())
	}
	if len(g.glyphs) != 0 {
		t.Fatal("analog chrome must not blit the colon")
	}
	// Twelve o'clock mark, 110px above the centre.
	if g.px[10][119] != Blue {
		t.Fatalf("bezel mark = %#x", g.px[10][119])
	}
	// One-minute tick at 6°.
	c, s := 0.10452846326765347, -0.9945218953682733
	x, y := int(120+c*110), int(120+s*110)
	if g.px[y][x] != White {
		t.Fatalf("minute tick at (%d,%d) = %#x", x, y, g.px[y][x])
	}

	e.SetFace(e.Face().Toggle())
	if e.Face() != FaceDigital || g.clears != 2 {
		t.Fatal("toggle back failed")
	}
}

func TestAnalogIncrementalMatchesFreshRender(t *testing.T) {
	cases := []struct {
		name     string
		from, to time.Time
	}{
		{"second", at(10, 10, 0), at(10, 10, 1)},
		{"minute 10 to 11", at(10, 10, 59), at(10, 11, 0)},
		{"hour", at(10, 59, 59), at(11, 0, 0)},
		{"overlap", at(3, 15, 14), at(3, 15, 15)},
		{"jump", at(1, 5, 40), at(7, 50, 20)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bat := &fakeBattery{level: 70}
			inc := &grid{}
			e := New(inc, Config{Face: FaceAnalog, Battery: bat})
			e.Refresh(tc.from)
			if !e.Refresh(tc.to) {
				t.Fatal("refresh reported no change")
			}

			fresh := &grid{}
			New(fresh, Config{Face: FaceAnalog, Battery: bat}).Refresh(tc.to)

			if inc.px != fresh.px {
				n := 0
				for y := range inc.px {
					for x := range inc.px[y] {
						if inc.px[y][x] != fresh.px[y][x] && n < 5 {
							t.Errorf("pixel (%d,%d) = %#x, want %#x", x, y, inc.px[y][x], fresh.px[y][x])
							n++
						}
					}
				}
				t.Fatal("incremental render differs from fresh render")
			}
		})
	}
}

func TestAnalogMinuteEraseLeavesBackground(t *testing.T) {
	g := &grid{}
	e := New(g, Config{Face: FaceAnalog})
	e.Refresh(at(10, 10, 30))
	old := handPath(nil, 60, 100, 1, false)
	tip := old[95]
	if g.px[tip.y][tip.x] != Red {
		t.Fatalf("minute hand not drawn at %+v", tip)
	}
	e.Refresh(at(10, 11, 30))
	if g.px[tip.y][tip.x] != Black {
		t.Fatalf("old minute pixel %+v = %#x, want background", tip, g.px[tip.y][tip.x])
	}
	nw := handPath(nil, 66, 100, 1, false)[95]
	if g.px[nw.y][nw.x] != Red {
		t.Fatalf("new minute pixel %+v = %#x", nw, g.px[nw.y][nw.x])
	}
}

func TestAnalogStackingOrder(t *testing.T) {
	g := &grid{}
	e := New(g, Config{Face: FaceAnalog})
	// All hands overlap near 12 o'clock; the hour hand must win.
	e.Refresh(at(0, 0, 0))
	p := handPath(nil, 0, 55, 1, true)[30]
	if g.px[p.y][p.x] != White {
		t.Fatalf("overlap pixel = %#x, want hour colour", g.px[p.y][p.x])
	}
	// Second hand moves away: the minute hand shows through where the
	// second hand was drawn over it.
	e.Refresh(at(0, 0, 1))
	q := handPath(nil, 0, 100, 1, false)[80]
	if g.px[q.y][q.x] != Red {
		t.Fatalf("minute pixel = %#x", g.px[q.y][q.x])
	}
}

func TestStyleNormalize(t *testing.T) {
	s := DefaultStyle()
	s.Minute.Length = 500
	s.Hour.Width = 0
	s.normalize()
	if s.Minute.Length != MaxHandLength || s.Hour.Width != 1 {
		t.Fatalf("style = %+v", s)
	}
}

func TestParseFace(t *testing.T) {
	if ParseFace("analog") != FaceAnalog || ParseFace("digital") != FaceDigital || ParseFace("") != FaceDigital {
		t.Fatal("ParseFace")
	}
}
