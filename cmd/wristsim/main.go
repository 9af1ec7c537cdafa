//go:build !tinygo

// Command wristsim runs the watch against the simulated peripherals and
// writes the last frame as a PNG.
//
//	wristsim -for 40s -tap 10s -raise 35s -png face.png
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"wristcore-go/platform"
	"wristcore-go/services/config"
	"wristcore-go/services/display"
	"wristcore-go/services/watch"
	"wristcore-go/types"
)

func main() {
	device := flag.String("device", "sim", "embedded settings to load")
	face := flag.String("face", "", "override the face: digital or analog")
	touchMode := flag.String("touch", "", "override the touch mode: poll or interrupt")
	runFor := flag.Duration("for", 20*time.Second, "how long to run")
	tapEvery := flag.Duration("tap", 0, "tap the screen at this interval")
	raiseEvery := flag.Duration("raise", 0, "raise the wrist at this interval")
	walk := flag.Uint("walk", 0, "steps added per second")
	out := flag.String("png", "", "write the final frame here")
	verbose := flag.Bool("v", false, "print backlight changes")
	flag.Parse()

	settings, err := config.Load(*device)
	if err != nil {
		println("[wristsim] config:", err.Error())
		os.Exit(1)
	}
	if *face != "" {
		settings.Face = display.ParseFace(*face).String()
	}
	if *touchMode != "" {
		settings.TouchMode = *touchMode
	}

	b := platform.NewSim(platform.SimOptions{Verbose: *verbose})
	w, err := watch.Build(&b.Board, settings)
	if err != nil {
		println("[wristsim] build:", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *runFor)
	defer cancel()

	go script(ctx, b, *tapEvery, *raiseEvery, uint32(*walk))
	_ = w.Run(ctx)

	println("[wristsim] face", w.App.Face().String(), "steps", int(w.Motion.Steps()),
		"touch overruns", int(w.Touch.Overruns()))
	if *out != "" {
		if err := writePNG(b, *out); err != nil {
			println("[wristsim] png:", err.Error())
			os.Exit(1)
		}
	}
}

// script plays user input into the models until ctx ends.
func script(ctx context.Context, b *platform.Sim, tap, raise time.Duration, walk uint32) {
	tapC := ticker(tap)
	raiseC := ticker(raise)
	sec := time.NewTicker(time.Second)
	defer sec.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tapC:
			println("[wristsim] tap")
			b.Touch.Tap(120, 120)
		case <-raiseC:
			// Let the loop see the arm at rest first so the anchor is 0.
			b.Accel.Move(types.AccelSample{X: 0, Y: 0, Z: -1000})
			select {
			case <-ctx.Done():
				return
			case <-time.After(300 * time.Millisecond):
			}
			println("[wristsim] raise")
			b.Accel.Move(types.AccelSample{X: 0, Y: -400, Z: -900})
		case <-sec.C:
			if walk > 0 {
				b.Accel.Walk(walk)
			}
		}
	}
}

// ticker returns a tick channel, or nil (never fires) for d <= 0.
func ticker(d time.Duration) <-chan time.Time {
	if d <= 0 {
		return nil
	}
	return time.NewTicker(d).C
}

func writePNG(b *platform.Sim, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.Frame.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
