// Package schedule takes periodic P-state snapshots on a cron
// expression and stores them in the snapshot database.
package schedule

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zekorzgame/fusiontweaker/pkg/hwio"
	"github.com/zekorzgame/fusiontweaker/pkg/pstate"
	"github.com/zekorzgame/fusiontweaker/pkg/snapshotdb"
)

// Recorder decodes all P-states on a schedule and persists them.
type Recorder struct {
	cron   *cron.Cron
	store  *snapshotdb.DB
	acc    hwio.Accessor
	refs   pstate.References
	logger *log.Logger
}

// NewRecorder creates a recorder. refs are the discovered reference
// inputs used for every decode.
func NewRecorder(store *snapshotdb.DB, acc hwio.Accessor, refs pstate.References, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}

	return &Recorder{
		cron:   cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
		store:  store,
		acc:    acc,
		refs:   refs,
		logger: logger,
	}
}

// Start registers the snapshot job and starts the scheduler.
func (r *Recorder) Start(cronExpr string) error {
	_, err := r.cron.AddFunc(cronExpr, func() {
		if err := r.TakeSnapshot(); err != nil {
			r.logger.Printf("Scheduled snapshot failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}

	r.cron.Start()
	r.logger.Printf("Snapshot recorder started (%s)", cronExpr)
	return nil
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (r *Recorder) Stop() {
	ctx := r.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(30 * time.Second):
		r.logger.Println("Timeout waiting for snapshot job to complete")
	}
	r.logger.Println("Snapshot recorder stopped")
}

// TakeSnapshot reads and decodes all ten P-states of core 0 and
// stores them with a common timestamp. Individual states that fail to
// read or decode are logged and skipped.
func (r *Recorder) TakeSnapshot() error {
	takenAt := time.Now()
	stored := 0

	for index := 0; index < pstate.NumPStates; index++ {
		raw, err := r.acc.ReadPState(index, 0)
		if err != nil {
			r.logger.Printf("Failed to read p-state %d: %v", index, err)
			continue
		}

		settings, err := pstate.Decode(raw, index, r.refs)
		if err != nil {
			r.logger.Printf("Failed to decode p-state %d (0x%08X): %v", index, raw, err)
			continue
		}

		s := &snapshotdb.Snapshot{
			TakenAt:         takenAt,
			PState:          index,
			Core:            0,
			RawValue:        raw,
			Multiplier:      settings.MultiplierOrDivider,
			Voltage:         settings.Voltage,
			BusSpeedMHz:     settings.BusSpeedMHz,
			PLLFrequencyMHz: settings.PLLFrequencyMHz,
		}
		if err := r.store.InsertSnapshot(s); err != nil {
			return fmt.Errorf("failed to store p-state %d: %w", index, err)
		}
		stored++
	}

	if stored == 0 {
		return fmt.Errorf("no p-state could be read")
	}
	return nil
}
