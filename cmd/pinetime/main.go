//go:build tinygo && nrf52

package main

import (
	"context"
	"time"

	"wristcore-go/platform"
	"wristcore-go/services/config"
	"wristcore-go/services/watch"
)

func main() {
	// Give a debugger or RTT console time to attach before we print.
	time.Sleep(500 * time.Millisecond)
	println("[main] boot")

	settings, err := config.Load("pinetime")
	if err != nil {
		println("[main] config:", err.Error())
		return
	}

	b := platform.PineTime()
	w, err := watch.Build(b, settings)
	if err != nil {
		println("[main] build:", err.Error())
		return
	}
	println("[main] running, touch", w.Touch.Mode().String())
	_ = w.Run(context.Background())
}
