package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (pinetime, sim, devboard)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

const cfgPineTime = `{
  "face": "digital",
  "touch_mode": "interrupt",
  "tick_ms": 1000,
  "blank_after_s": 15,
  "backlight": { "level": 2, "max": 3, "fade_ms": 200 },
  "motion": { "threshold": 2000, "duration": 1, "interrupt": true }
}`

const cfgSim = `{
  "face": "analog",
  "touch_mode": "poll",
  "tick_ms": 1000,
  "blank_after_s": 30,
  "hands": {
    "second": { "length": 90,  "width": 1, "color": 65504 },
    "minute": { "length": 100, "width": 1, "color": 63488 },
    "hour":   { "length": 55,  "width": 1, "color": 65535 }
  },
  "motion": { "interrupt": false }
}`

const cfgDevBoard = `{
  "face": "digital",
  "touch_mode": "poll",
  "tick_ms": 1000,
  "blank_after_s": 60,
  "bezel": false,
  "backlight": { "max": 1 }
}`

var embeddedConfigs = map[string][]byte{
	"pinetime": []byte(cfgPineTime),
	"sim":      []byte(cfgSim),
	"devboard": []byte(cfgDevBoard),
}
