// Package refclock discovers the two external reference inputs the
// codec needs: the reference bus speed and the currently active
// maximum core divisor. Both come from the P-state 0 register of core
// 0, combined with the OS-reported core frequency.
package refclock

import (
	"fmt"
	"log"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/zekorzgame/fusiontweaker/pkg/hwio"
	"github.com/zekorzgame/fusiontweaker/pkg/pstate"
)

// Fallbacks when discovery is not possible (no msr module, virtual
// machine, non-AMD host). 100 MHz is the platform's nominal reference
// clock.
const (
	DefaultBusSpeedMHz = 100.0
	DefaultMaxDivider  = 1.0
)

// Discoverer derives reference inputs from hardware reads.
type Discoverer struct {
	acc hwio.Accessor
}

// New creates a Discoverer on top of a register accessor.
func New(acc hwio.Accessor) *Discoverer {
	return &Discoverer{acc: acc}
}

// BusSpeedMHz computes the reference clock: the OS-reported core 0
// frequency divided by the multiplier programmed into P-state 0.
func (d *Discoverer) BusSpeedMHz() (float64, error) {
	raw, err := d.acc.ReadPState(0, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to read p-state 0: %w", err)
	}
	multiplier, err := pstate.MultiplierFromRaw(raw)
	if err != nil {
		return 0, err
	}

	mhz, err := reportedMHz()
	if err != nil {
		return 0, err
	}
	return busSpeedFrom(mhz, multiplier)
}

// CurrentMaxDivider returns the divisor ratio active in P-state 0.
func (d *Discoverer) CurrentMaxDivider() (float64, error) {
	raw, err := d.acc.ReadPState(0, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to read p-state 0: %w", err)
	}
	return pstate.DivisorRatioFromRaw(raw)
}

// References bundles both inputs, falling back to platform defaults
// when discovery fails.
func (d *Discoverer) References() pstate.References {
	refs := pstate.References{
		BusSpeedMHz:       DefaultBusSpeedMHz,
		CurrentMaxDivider: DefaultMaxDivider,
	}

	if bus, err := d.BusSpeedMHz(); err == nil {
		refs.BusSpeedMHz = bus
	} else {
		log.Printf("Bus speed discovery failed, assuming %g MHz: %v", DefaultBusSpeedMHz, err)
	}

	if div, err := d.CurrentMaxDivider(); err == nil {
		refs.CurrentMaxDivider = div
	} else {
		log.Printf("Max divider discovery failed, assuming %g: %v", DefaultMaxDivider, err)
	}

	return refs
}

// reportedMHz reads the current core 0 frequency from the OS.
func reportedMHz() (float64, error) {
	infos, err := cpu.Info()
	if err != nil {
		return 0, fmt.Errorf("failed to query cpu info: %w", err)
	}
	if len(infos) == 0 || infos[0].Mhz <= 0 {
		return 0, fmt.Errorf("cpu info reported no usable frequency")
	}
	return infos[0].Mhz, nil
}

func busSpeedFrom(coreMHz, multiplier float64) (float64, error) {
	if multiplier <= 0 {
		return 0, fmt.Errorf("invalid multiplier %g", multiplier)
	}
	return coreMHz / multiplier, nil
}
