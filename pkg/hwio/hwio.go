// Package hwio reads and writes the raw P-state control registers.
//
// CPU P-states live in per-core MSRs, the two Northbridge P-states in
// PCI configuration space of the node 0 Northbridge function blocks.
// The pstate package does the actual interpretation; this package only
// moves 32-bit values in and out of hardware.
package hwio

import "fmt"

// MSRPStateBase is the first CPU P-state MSR; P-state n is at base+n.
const MSRPStateBase = 0xC0010064

// Northbridge P-state registers, addressed the WinRing0 way: a single
// address byte holding (device<<3)|function on bus 0. 0xC3 is device
// 0x18 function 3 (D18F3xDC), 0xC6 is function 6 (D18F6x90).
const (
	PCIAddressNB0 = 0xC3
	PCIOffsetNB0  = 0xDC
	PCIAddressNB1 = 0xC6
	PCIOffsetNB1  = 0x90
)

// Space says which register space a P-state register lives in.
type Space int

const (
	SpaceMSR Space = iota
	SpacePCI
)

func (s Space) String() string {
	if s == SpaceMSR {
		return "msr"
	}
	return "pci"
}

// Register is a resolved P-state register address.
type Register struct {
	Space Space

	// MSR address, SpaceMSR only.
	MSR uint32

	// PCI location, SpacePCI only.
	Bus      uint8
	Device   uint8
	Function uint8
	Offset   uint8
}

// RegisterForPState resolves a P-state index to its register address.
func RegisterForPState(index int) (Register, error) {
	switch {
	case index >= 0 && index <= 7:
		return Register{Space: SpaceMSR, MSR: MSRPStateBase + uint32(index)}, nil
	case index == 8:
		bus, dev, fn := splitPCIAddress(PCIAddressNB0)
		return Register{Space: SpacePCI, Bus: bus, Device: dev, Function: fn, Offset: PCIOffsetNB0}, nil
	case index == 9:
		bus, dev, fn := splitPCIAddress(PCIAddressNB1)
		return Register{Space: SpacePCI, Bus: bus, Device: dev, Function: fn, Offset: PCIOffsetNB1}, nil
	}
	return Register{}, fmt.Errorf("no register for p-state index %d", index)
}

// splitPCIAddress unpacks a (device<<3)|function address byte.
func splitPCIAddress(addr uint16) (bus, device, function uint8) {
	return uint8(addr >> 8), uint8(addr >> 3 & 0x1F), uint8(addr & 0x7)
}

// Accessor reads and writes raw P-state register values. Implemented
// per platform; New returns the platform implementation.
type Accessor interface {
	// ReadPState returns the lower 32 bits of the P-state register.
	// core selects the CPU for MSR-space states and is ignored for
	// the Northbridge states.
	ReadPState(index, core int) (uint32, error)

	// WritePState stores value into the P-state register, preserving
	// the upper half of MSR-space registers.
	WritePState(index, core int, value uint32) error

	Close() error
}
