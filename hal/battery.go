package hal

import "wristcore-go/x/mathx"

// BatteryLevel maps a single-cell LiPo voltage to percent with the linear
// approximation used on the watch: about 3.47 V is empty, 4.0 V full.
func BatteryLevel(mv int) int {
	return mathx.Clamp((19*mv)/100-660, 0, 100)
}
