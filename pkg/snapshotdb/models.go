package snapshotdb

import (
	"database/sql"
	"fmt"
	"time"
)

// Snapshot is one decoded P-state register captured at a point in time.
type Snapshot struct {
	ID              int64     `json:"id"`
	TakenAt         time.Time `json:"taken_at"`
	PState          int       `json:"pstate"`
	Core            int       `json:"core"`
	RawValue        uint32    `json:"raw_value"`
	Multiplier      float64   `json:"multiplier"`
	Voltage         float64   `json:"voltage"`
	BusSpeedMHz     float64   `json:"bus_speed_mhz"`
	PLLFrequencyMHz float64   `json:"pll_frequency_mhz"`
	CreatedAt       time.Time `json:"created_at"`
}

// InsertSnapshot stores a snapshot and fills in its ID.
func (db *DB) InsertSnapshot(s *Snapshot) error {
	if s.TakenAt.IsZero() {
		s.TakenAt = time.Now()
	}

	result, err := db.conn.Exec(`
		INSERT INTO snapshots (taken_at, pstate, core, raw_value, multiplier, voltage, bus_speed_mhz, pll_frequency_mhz)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.TakenAt, s.PState, s.Core, int64(s.RawValue), s.Multiplier, s.Voltage, s.BusSpeedMHz, s.PLLFrequencyMHz,
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get snapshot ID: %w", err)
	}
	s.ID = id

	return nil
}

// GetSnapshot retrieves a snapshot by ID.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow(`
		SELECT id, taken_at, pstate, core, raw_value, multiplier, voltage, bus_speed_mhz, pll_frequency_mhz, created_at
		FROM snapshots WHERE id = ?`, id)

	s, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return s, nil
}

// ListSnapshots returns snapshots newest-first. limit <= 0 means no
// limit.
func (db *DB) ListSnapshots(limit, offset int) ([]*Snapshot, error) {
	query := `
		SELECT id, taken_at, pstate, core, raw_value, multiplier, voltage, bus_speed_mhz, pll_frequency_mhz, created_at
		FROM snapshots ORDER BY taken_at DESC, pstate ASC`

	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snapshots []*Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	s := &Snapshot{}
	var raw int64
	err := row.Scan(&s.ID, &s.TakenAt, &s.PState, &s.Core, &raw,
		&s.Multiplier, &s.Voltage, &s.BusSpeedMHz, &s.PLLFrequencyMHz, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.RawValue = uint32(raw)
	return s, nil
}
