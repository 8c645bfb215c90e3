package pstate

import "math"

// Serial VID transfer function: 1.55 V at code 0, 12.5 mV per step.
const (
	vidZeroVolts = 1.55
	vidStepVolts = 0.0125
)

// VoltageFromVID maps a 7-bit VID code to volts. The function is
// strictly decreasing; code 127 decodes to a nominally negative
// -0.0375 V, which is returned as-is.
func VoltageFromVID(vid uint32) float64 {
	return vidZeroVolts - vidStepVolts*float64(vid)
}

// VIDFromVoltage inverts the transfer function. No clamping is done:
// volts outside (-0.0375, 1.55] produce a code outside 0-127, which
// the encode-time validator is responsible for rejecting.
func VIDFromVoltage(volts float64) int {
	return int(math.Round((vidZeroVolts - volts) / vidStepVolts))
}
