// Package pstate converts between raw 32-bit P-state control register
// values and engineering-unit settings for AMD family 10h/12h APUs.
//
// P-state indices 0-7 address the per-core CPU P-state MSRs, indices 8
// and 9 address the two Northbridge P-state registers in PCI
// configuration space. The codec itself performs no hardware I/O; raw
// values come from and go to the hwio package.
package pstate

// Settings holds the engineering-unit view of one P-state register.
// It is a pure projection of a raw register value plus the two external
// reference inputs and has no lifecycle beyond a single conversion.
type Settings struct {
	// MultiplierOrDivider is the core clock multiplier for CPU
	// P-states or the NCLK divisor for Northbridge P-states.
	MultiplierOrDivider float64 `json:"multiplier_or_divider"`

	// Voltage is the core (or Northbridge) voltage in volts.
	Voltage float64 `json:"voltage"`

	// BusSpeedMHz is the reference clock speed. It is supplied by the
	// caller, not decoded from the register.
	BusSpeedMHz float64 `json:"bus_speed_mhz"`

	// PLLFrequencyMHz is the derived output clock frequency.
	PLLFrequencyMHz float64 `json:"pll_frequency_mhz"`
}

// References carries the externally discovered inputs the codec needs
// to compute PLL frequencies. See the refclock package for discovery.
type References struct {
	BusSpeedMHz       float64 `json:"bus_speed_mhz"`
	CurrentMaxDivider float64 `json:"current_max_divider"`
}

// Kind selects the register layout and PLL formula for a P-state.
type Kind int

const (
	// KindCPU covers the per-core P-state MSRs, indices 0-7.
	KindCPU Kind = iota
	// KindNorthbridge0 is Northbridge P-state 0, index 8 (D18F3xDC).
	KindNorthbridge0
	// KindNorthbridge1 is Northbridge P-state 1, index 9 (D18F6x90).
	KindNorthbridge1
)

// NumPStates is the number of addressable P-states: eight CPU states
// followed by the two Northbridge states.
const NumPStates = 10

func (k Kind) String() string {
	switch k {
	case KindCPU:
		return "cpu"
	case KindNorthbridge0:
		return "nb0"
	case KindNorthbridge1:
		return "nb1"
	}
	return "unknown"
}

// KindForIndex maps a P-state index to its register kind.
func KindForIndex(index int) (Kind, error) {
	switch {
	case index >= 0 && index <= 7:
		return KindCPU, nil
	case index == 8:
		return KindNorthbridge0, nil
	case index == 9:
		return KindNorthbridge1, nil
	}
	return 0, &IndexError{Index: index}
}
