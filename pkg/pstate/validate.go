package pstate

// Encode-time limits. Multiplier limits apply to CPU P-states only;
// Northbridge dividers just have to be positive.
const (
	MinMultiplier  = 4.0
	MaxMultiplier  = 48.0
	MaxVoltage     = vidZeroVolts
	MaxBusSpeedMHz = 200.0
)

// Validate range-checks a settings record for the given register kind.
// It returns a RangeError naming the first offending field.
func Validate(s Settings, kind Kind) error {
	if kind == KindCPU {
		if s.MultiplierOrDivider < MinMultiplier || s.MultiplierOrDivider > MaxMultiplier {
			return &RangeError{Field: "multiplierOrDivider", Value: s.MultiplierOrDivider, Min: MinMultiplier, Max: MaxMultiplier}
		}
	} else if s.MultiplierOrDivider <= 0 {
		return &RangeError{Field: "multiplierOrDivider", Value: s.MultiplierOrDivider, Min: 0, Max: MaxMultiplier}
	}
	if s.Voltage <= 0 || s.Voltage > MaxVoltage {
		return &RangeError{Field: "voltage", Value: s.Voltage, Min: 0, Max: MaxVoltage}
	}
	if s.BusSpeedMHz <= 0 || s.BusSpeedMHz > MaxBusSpeedMHz {
		return &RangeError{Field: "busSpeed", Value: s.BusSpeedMHz, Min: 0, Max: MaxBusSpeedMHz}
	}
	return nil
}
