package snapshotdb

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "fusiontweaker.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertAndGetSnapshot(t *testing.T) {
	db := openTestDB(t)

	s := &Snapshot{
		TakenAt:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		PState:          0,
		Core:            0,
		RawValue:        0x00000090,
		Multiplier:      25,
		Voltage:         1.55,
		BusSpeedMHz:     100,
		PLLFrequencyMHz: 2500,
	}

	if err := db.InsertSnapshot(s); err != nil {
		t.Fatalf("InsertSnapshot failed: %v", err)
	}
	if s.ID == 0 {
		t.Error("InsertSnapshot should set ID")
	}

	got, err := db.GetSnapshot(s.ID)
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if got.RawValue != 0x00000090 {
		t.Errorf("RawValue = 0x%08X, want 0x00000090", got.RawValue)
	}
	if got.Multiplier != 25 || got.Voltage != 1.55 {
		t.Errorf("settings = (%g, %g), want (25, 1.55)", got.Multiplier, got.Voltage)
	}
}

func TestGetSnapshotMissing(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.GetSnapshot(42); err == nil {
		t.Error("GetSnapshot should fail for missing ID")
	}
}

func TestListSnapshots(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s := &Snapshot{
			TakenAt:     base.Add(time.Duration(i) * time.Minute),
			PState:      i,
			RawValue:    uint32(0x90 + i),
			Multiplier:  float64(25 - i),
			Voltage:     1.55,
			BusSpeedMHz: 100,
		}
		if err := db.InsertSnapshot(s); err != nil {
			t.Fatalf("InsertSnapshot failed: %v", err)
		}
	}

	all, err := db.ListSnapshots(0, 0)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("ListSnapshots returned %d rows, want 5", len(all))
	}

	// Newest first.
	if all[0].PState != 4 {
		t.Errorf("first snapshot pstate = %d, want 4", all[0].PState)
	}

	limited, err := db.ListSnapshots(2, 0)
	if err != nil {
		t.Fatalf("ListSnapshots with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListSnapshots(2) returned %d rows, want 2", len(limited))
	}
}

func TestExportCSV(t *testing.T) {
	db := openTestDB(t)

	s := &Snapshot{
		PState:          8,
		RawValue:        32<<20 | 18<<12,
		Multiplier:      8,
		Voltage:         1.325,
		BusSpeedMHz:     100,
		PLLFrequencyMHz: 250,
	}
	if err := db.InsertSnapshot(s); err != nil {
		t.Fatalf("InsertSnapshot failed: %v", err)
	}

	var buf bytes.Buffer
	if err := db.ExportCSV(&buf, 0); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Multiplier/Divider") {
		t.Error("CSV export missing header row")
	}
	if !strings.Contains(out, "0x02012000") {
		t.Errorf("CSV export missing raw value, got:\n%s", out)
	}
}

func TestExportJSON(t *testing.T) {
	db := openTestDB(t)

	if err := db.InsertSnapshot(&Snapshot{PState: 0, RawValue: 0x90, Multiplier: 25, Voltage: 1.55, BusSpeedMHz: 100}); err != nil {
		t.Fatalf("InsertSnapshot failed: %v", err)
	}

	var buf bytes.Buffer
	if err := db.ExportJSON(&buf, 0); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export struct {
		Snapshots []*Snapshot `json:"snapshots"`
	}
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(export.Snapshots) != 1 {
		t.Fatalf("exported %d snapshots, want 1", len(export.Snapshots))
	}
	if export.Snapshots[0].Multiplier != 25 {
		t.Errorf("exported multiplier = %g, want 25", export.Snapshots[0].Multiplier)
	}
}
