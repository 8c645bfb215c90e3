package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zekorzgame/fusiontweaker/pkg/pstate"
)

var (
	showCore int
	showJSON bool
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current P-state settings",
		Long: `Read and decode all ten P-state registers.

Examples:
  # Show all P-states of core 0
  fusiontweaker show

  # Show the P-states of core 2 as JSON
  fusiontweaker show --core 2 --json`,
		RunE: runShow,
	}

	cmd.Flags().IntVar(&showCore, "core", 0, "CPU core to read (CPU P-states only)")
	cmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	return cmd
}

type stateRow struct {
	Index    int             `json:"index"`
	Kind     string          `json:"kind"`
	RawValue uint32          `json:"raw_value"`
	Settings pstate.Settings `json:"settings"`
}

func runShow(_ *cobra.Command, _ []string) error {
	acc, refs, err := openHardware()
	if err != nil {
		return err
	}
	defer func() { _ = acc.Close() }()

	var rows []stateRow
	for index := 0; index < pstate.NumPStates; index++ {
		raw, err := acc.ReadPState(index, showCore)
		if err != nil {
			return fmt.Errorf("failed to read p-state %d: %w", index, err)
		}
		settings, err := pstate.Decode(raw, index, refs)
		if err != nil {
			return fmt.Errorf("failed to decode p-state %d (0x%08X): %w", index, raw, err)
		}
		kind, _ := pstate.KindForIndex(index)
		rows = append(rows, stateRow{Index: index, Kind: kind.String(), RawValue: raw, Settings: settings})
	}

	if showJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "P-STATE\tKIND\tRAW\tMULT/DIV\tVOLTAGE\tBUS MHZ\tPLL MHZ")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t0x%08X\t%.2f\t%.4f\t%.2f\t%.2f\n",
			r.Index, r.Kind, r.RawValue,
			r.Settings.MultiplierOrDivider, r.Settings.Voltage,
			r.Settings.BusSpeedMHz, r.Settings.PLLFrequencyMHz)
	}
	return w.Flush()
}
