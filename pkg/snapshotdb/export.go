package snapshotdb

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// ExportCSV writes stored snapshots to w in CSV format. limit <= 0
// exports everything.
func (db *DB) ExportCSV(w io.Writer, limit int) error {
	snapshots, err := db.ListSnapshots(limit, 0)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	headers := []string{
		"ID", "Taken At", "P-State", "Core", "Raw Value",
		"Multiplier/Divider", "Voltage (V)", "Bus Speed (MHz)", "PLL (MHz)",
	}
	if err := csvWriter.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, s := range snapshots {
		row := []string{
			strconv.FormatInt(s.ID, 10),
			s.TakenAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(s.PState),
			strconv.Itoa(s.Core),
			fmt.Sprintf("0x%08X", s.RawValue),
			fmt.Sprintf("%.4f", s.Multiplier),
			fmt.Sprintf("%.4f", s.Voltage),
			fmt.Sprintf("%.2f", s.BusSpeedMHz),
			fmt.Sprintf("%.2f", s.PLLFrequencyMHz),
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// ExportJSON writes stored snapshots to w as indented JSON. limit <= 0
// exports everything.
func (db *DB) ExportJSON(w io.Writer, limit int) error {
	snapshots, err := db.ListSnapshots(limit, 0)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	export := struct {
		Snapshots []*Snapshot `json:"snapshots"`
	}{
		Snapshots: snapshots,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
