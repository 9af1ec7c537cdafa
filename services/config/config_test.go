// services/config/config_test.go
package config

import (
	"testing"
	"time"

	"wristcore-go/errcode"
	"wristcore-go/services/display"
)

func TestLoad_EmbeddedDevices(t *testing.T) {
	for _, dev := range []string{"pinetime", "sim", "devboard"} {
		w, err := Load(dev)
		if err != nil {
			t.Fatalf("%s: %v", dev, err)
		}
		if w.Tick() != time.Second {
			t.Fatalf("%s: tick = %v", dev, w.Tick())
		}
		if w.Backlight.Level == 0 || w.Backlight.Level > w.Backlight.Max {
			t.Fatalf("%s: backlight = %+v", dev, w.Backlight)
		}
	}
}

func TestLoad_PineTime(t *testing.T) {
	w, err := Load("pinetime")
	if err != nil {
		t.Fatal(err)
	}
	if w.TouchMode != "interrupt" || !w.Motion.Interrupt || w.Motion.Threshold != 2000 {
		t.Fatalf("watch = %+v", w)
	}
	if w.Fade() != 200*time.Millisecond || w.BlankAfter() != 15*time.Second {
		t.Fatalf("fade=%v blank=%v", w.Fade(), w.BlankAfter())
	}
	if w.Style() != display.DefaultStyle() {
		t.Fatalf("style = %+v, want defaults", w.Style())
	}
}

func TestLoad_UnknownDevice(t *testing.T) {
	_, err := Load("toaster")
	if errcode.Of(err) != errcode.UnknownDevice {
		t.Fatalf("err = %v", err)
	}
}

func TestDecode_Defaults(t *testing.T) {
	w, err := Decode([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if w.Face != "digital" || w.TouchMode != "poll" || w.TickMS != 1000 || w.BlankAfterS != 15 {
		t.Fatalf("watch = %+v", w)
	}
	if w.FaceKind() != display.FaceDigital {
		t.Fatal("face kind")
	}
	if !*w.Bezel {
		t.Fatal("bezel should default on")
	}
}

func TestDecode_Overrides(t *testing.T) {
	w, err := Decode([]byte(`{
		"face": "analog",
		"bezel": false,
		"palette": {"background": 31, "foreground": 0},
		"hands": {"minute": {"length": 400, "width": 3, "color": 2016}}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	s := w.Style()
	if w.FaceKind() != display.FaceAnalog || s.Bezel {
		t.Fatalf("face=%v bezel=%v", w.FaceKind(), s.Bezel)
	}
	if s.Background != display.Blue || s.Foreground != display.Black {
		t.Fatalf("palette: bg=%#x fg=%#x", s.Background, s.Foreground)
	}
	if s.Minute.Length != display.MaxHandLength || s.Minute.Width != 3 || s.Minute.Color != display.Green {
		t.Fatalf("minute = %+v", s.Minute)
	}
	if s.Hour != display.DefaultStyle().Hour {
		t.Fatalf("hour = %+v", s.Hour)
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte(`{"face": 3}`))
	if errcode.Of(err) != errcode.InvalidArgument {
		t.Fatalf("err = %v", err)
	}
}

func TestLookupOverride(t *testing.T) {
	old := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(device string) ([]byte, bool) {
		return []byte(`{"tick_ms": 250}`), device == "bench"
	}
	t.Cleanup(func() { EmbeddedConfigLookup = old })

	w, err := Load("bench")
	if err != nil {
		t.Fatal(err)
	}
	if w.Tick() != 250*time.Millisecond {
		t.Fatalf("tick = %v", w.Tick())
	}
}
