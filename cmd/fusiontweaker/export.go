package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zekorzgame/fusiontweaker/pkg/snapshotdb"
)

var (
	exportOutput string
	exportLimit  int
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded snapshots",
		Long:  "Export recorded P-state snapshots in various formats",
	}

	cmd.PersistentFlags().StringVarP(&exportOutput, "out", "o", "", "Output file (default: stdout)")
	cmd.PersistentFlags().IntVar(&exportLimit, "limit", 0, "Maximum number of rows (0 = all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "csv",
		Short: "Export snapshots to CSV format",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runExport(func(store *snapshotdb.DB, w io.Writer) error {
				return store.ExportCSV(w, exportLimit)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "json",
		Short: "Export snapshots to JSON format",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runExport(func(store *snapshotdb.DB, w io.Writer) error {
				return store.ExportJSON(w, exportLimit)
			})
		},
	})

	return cmd
}

func runExport(export func(*snapshotdb.DB, io.Writer) error) error {
	store, err := snapshotdb.Open(getDBPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	w := io.Writer(os.Stdout)
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	return export(store, w)
}
