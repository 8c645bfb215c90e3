package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zekorzgame/fusiontweaker/pkg/pstate"
)

var (
	codecPState     int
	codecBusSpeed   float64
	codecMaxDivider float64
	codecMultiplier float64
	codecVoltage    float64
	codecStrict     bool
)

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode RAW",
		Short: "Decode a raw register value offline",
		Long: `Decode a raw 32-bit register value without touching hardware.
RAW accepts decimal or 0x-prefixed hex.

Examples:
  fusiontweaker decode 0x90 --pstate 0
  fusiontweaker decode 0x02012000 --pstate 8 --max-divider 4`,
		Args: cobra.ExactArgs(1),
		RunE: runDecode,
	}

	cmd.Flags().IntVar(&codecPState, "pstate", 0, "P-state index (0-9)")
	cmd.Flags().Float64Var(&codecBusSpeed, "bus", 100, "Reference bus speed in MHz")
	cmd.Flags().Float64Var(&codecMaxDivider, "max-divider", 1, "Current maximum core divisor")
	cmd.Flags().BoolVar(&codecStrict, "strict", false, "Fail on out-of-range index instead of returning the sentinel")

	return cmd
}

func runDecode(_ *cobra.Command, args []string) error {
	parsed, err := strconv.ParseUint(args[0], 0, 32)
	if err != nil {
		return fmt.Errorf("invalid raw value %q: %w", args[0], err)
	}

	refs := pstate.References{BusSpeedMHz: codecBusSpeed, CurrentMaxDivider: codecMaxDivider}

	var settings pstate.Settings
	if codecStrict {
		settings, err = pstate.DecodeStrict(uint32(parsed), codecPState, refs)
	} else {
		settings, err = pstate.Decode(uint32(parsed), codecPState, refs)
	}
	if err != nil {
		return err
	}

	fmt.Printf("P-state %d (0x%08X):\n", codecPState, uint32(parsed))
	fmt.Printf("  Multiplier/Divider: %.4f\n", settings.MultiplierOrDivider)
	fmt.Printf("  Voltage:            %.4f V\n", settings.Voltage)
	fmt.Printf("  Bus speed:          %.2f MHz\n", settings.BusSpeedMHz)
	fmt.Printf("  PLL frequency:      %.2f MHz\n", settings.PLLFrequencyMHz)
	return nil
}

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode settings into a raw register value offline",
		Long: `Validate and encode settings without touching hardware.

Examples:
  fusiontweaker encode --pstate 0 --multiplier 18 --voltage 1.55`,
		RunE: runEncode,
	}

	cmd.Flags().IntVar(&codecPState, "pstate", 0, "P-state index (0-8)")
	cmd.Flags().Float64Var(&codecMultiplier, "multiplier", 0, "Clock multiplier (CPU) or NCLK divisor (Northbridge)")
	cmd.Flags().Float64Var(&codecVoltage, "voltage", 0, "Voltage in volts")
	cmd.Flags().Float64Var(&codecBusSpeed, "bus", 100, "Reference bus speed in MHz")
	_ = cmd.MarkFlagRequired("multiplier")
	_ = cmd.MarkFlagRequired("voltage")

	return cmd
}

func runEncode(_ *cobra.Command, _ []string) error {
	settings := pstate.Settings{
		MultiplierOrDivider: codecMultiplier,
		Voltage:             codecVoltage,
		BusSpeedMHz:         codecBusSpeed,
	}

	raw, err := pstate.Encode(settings, codecPState)
	if err != nil {
		return err
	}

	fmt.Printf("0x%08X\n", raw)
	return nil
}
