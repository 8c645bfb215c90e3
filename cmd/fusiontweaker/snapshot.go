package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zekorzgame/fusiontweaker/pkg/schedule"
	"github.com/zekorzgame/fusiontweaker/pkg/snapshotdb"
)

var historyLimit int

func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Record the current P-states into the snapshot database",
		RunE:  runSnapshot,
	}
}

func runSnapshot(_ *cobra.Command, _ []string) error {
	acc, refs, err := openHardware()
	if err != nil {
		return err
	}
	defer func() { _ = acc.Close() }()

	store, err := snapshotdb.Open(getDBPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	recorder := schedule.NewRecorder(store, acc, refs, nil)
	if err := recorder.TakeSnapshot(); err != nil {
		return err
	}

	fmt.Printf("Snapshot recorded in %s\n", store.Path())
	return nil
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded P-state snapshots",
		RunE:  runHistory,
	}

	cmd.Flags().IntVar(&historyLimit, "limit", 30, "Maximum number of rows (0 = all)")

	return cmd
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := snapshotdb.Open(getDBPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	snapshots, err := store.ListSnapshots(historyLimit, 0)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Println("No snapshots recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTAKEN AT\tP-STATE\tRAW\tMULT/DIV\tVOLTAGE\tPLL MHZ")
	for _, s := range snapshots {
		fmt.Fprintf(w, "%d\t%s\t%d\t0x%08X\t%.2f\t%.4f\t%.2f\n",
			s.ID, s.TakenAt.Format("2006-01-02 15:04:05"), s.PState,
			s.RawValue, s.Multiplier, s.Voltage, s.PLLFrequencyMHz)
	}
	return w.Flush()
}
