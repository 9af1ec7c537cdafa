//go:build linux && !tinygo

// Command wristd runs the watch on a Linux board with a CST816S and a
// BMA421 on I²C. Frames are kept in memory and written out on exit.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"wristcore-go/platform/periphboard"
	"wristcore-go/services/config"
	"wristcore-go/services/watch"
)

func main() {
	device := flag.String("device", "devboard", "embedded settings to load")
	bus := flag.String("i2c", "", "I²C bus name (empty for the first)")
	rst := flag.String("touch-rst", "GPIO17", "touch reset line")
	tirq := flag.String("touch-irq", "GPIO27", "touch interrupt line, empty to poll")
	airq := flag.String("accel-irq", "", "accelerometer INT1 line, empty to poll")
	out := flag.String("png", "", "write the last frame here on exit")
	flag.Parse()

	settings, err := config.Load(*device)
	if err != nil {
		println("[wristd] config:", err.Error())
		os.Exit(1)
	}
	if *tirq == "" {
		settings.TouchMode = "poll"
	}
	settings.Motion.Interrupt = *airq != ""

	b, err := periphboard.Open(periphboard.Config{
		I2C:        *bus,
		TouchReset: *rst,
		TouchIRQ:   *tirq,
		AccelIRQ:   *airq,
	})
	if err != nil {
		println("[wristd] open:", err.Error())
		os.Exit(1)
	}
	defer b.Close()

	w, err := watch.Build(&b.Board, settings)
	if err != nil {
		println("[wristd] build:", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	println("[wristd] running, touch", w.Touch.Mode().String())
	_ = w.Run(ctx)

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			println("[wristd] png:", err.Error())
			return
		}
		defer f.Close()
		if err := b.Frame.WritePNG(f); err != nil {
			println("[wristd] png:", err.Error())
		}
	}
}
