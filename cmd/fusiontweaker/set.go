package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zekorzgame/fusiontweaker/pkg/pstate"
)

var (
	setPState     int
	setCore       int
	setMultiplier float64
	setVoltage    float64
	setDryRun     bool
)

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Encode and write a P-state",
		Long: `Validate, encode and write new settings into a P-state register.
Indices 0-7 are the CPU P-states, index 8 is Northbridge P-state 0.

Examples:
  # Set P-state 0 to 18x at 1.25 V
  fusiontweaker set --pstate 0 --multiplier 18 --voltage 1.25

  # Preview the raw value without touching hardware
  fusiontweaker set --pstate 0 --multiplier 18 --voltage 1.25 --dry-run`,
		RunE: runSet,
	}

	cmd.Flags().IntVar(&setPState, "pstate", 0, "P-state index (0-8)")
	cmd.Flags().IntVar(&setCore, "core", 0, "CPU core to write (CPU P-states only)")
	cmd.Flags().Float64Var(&setMultiplier, "multiplier", 0, "Clock multiplier (CPU) or NCLK divisor (Northbridge)")
	cmd.Flags().Float64Var(&setVoltage, "voltage", 0, "Voltage in volts")
	cmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Encode only, do not write")
	_ = cmd.MarkFlagRequired("multiplier")
	_ = cmd.MarkFlagRequired("voltage")

	return cmd
}

func runSet(_ *cobra.Command, _ []string) error {
	if setPState < 0 || setPState > 8 {
		return fmt.Errorf("p-state index %d is not writable (valid: 0-8)", setPState)
	}

	acc, refs, err := openHardware()
	if err != nil {
		return err
	}
	defer func() { _ = acc.Close() }()

	old, err := acc.ReadPState(setPState, setCore)
	if err != nil {
		return fmt.Errorf("failed to read current p-state %d: %w", setPState, err)
	}

	settings := pstate.Settings{
		MultiplierOrDivider: setMultiplier,
		Voltage:             setVoltage,
		BusSpeedMHz:         refs.BusSpeedMHz,
	}
	raw, err := pstate.Encode(settings, setPState)
	if err != nil {
		return err
	}

	fmt.Printf("P-state %d: 0x%08X -> 0x%08X\n", setPState, old, raw)
	if setDryRun {
		fmt.Println("Dry run, register not written")
		return nil
	}

	if err := acc.WritePState(setPState, setCore, raw); err != nil {
		return fmt.Errorf("failed to write p-state %d: %w", setPState, err)
	}

	// Read back what the hardware accepted.
	applied, err := acc.ReadPState(setPState, setCore)
	if err != nil {
		return fmt.Errorf("failed to read back p-state %d: %w", setPState, err)
	}
	decoded, err := pstate.Decode(applied, setPState, refs)
	if err != nil {
		return err
	}
	fmt.Printf("Applied: %.2fx at %.4f V (PLL %.2f MHz)\n",
		decoded.MultiplierOrDivider, decoded.Voltage, decoded.PLLFrequencyMHz)
	return nil
}
