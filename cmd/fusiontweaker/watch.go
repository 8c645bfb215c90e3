package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zekorzgame/fusiontweaker/pkg/schedule"
	"github.com/zekorzgame/fusiontweaker/pkg/snapshotdb"
)

var watchCron string

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Record P-state snapshots on a schedule",
		Long: `Run in the foreground and record P-state snapshots on a cron
schedule until interrupted.

Examples:
  # Snapshot every five minutes
  fusiontweaker watch --cron "*/5 * * * *"`,
		RunE: runWatch,
	}

	cmd.Flags().StringVar(&watchCron, "cron", "*/5 * * * *", "Cron expression for snapshots")

	return cmd
}

func runWatch(_ *cobra.Command, _ []string) error {
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
	if err := recorder.Start(watchCron); err != nil {
		return err
	}

	// Take one snapshot right away so the database is never empty.
	if err := recorder.TakeSnapshot(); err != nil {
		fmt.Fprintf(os.Stderr, "Initial snapshot failed: %v\n", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	recorder.Stop()
	return nil
}
