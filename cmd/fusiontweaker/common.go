package main

import (
	"os"
	"path/filepath"

	"github.com/zekorzgame/fusiontweaker/pkg/hwio"
	"github.com/zekorzgame/fusiontweaker/pkg/pstate"
	"github.com/zekorzgame/fusiontweaker/pkg/refclock"
)

// getDBPath returns the path to the snapshot database file
func getDBPath() string {
	// Check environment variable first
	if dbPath := os.Getenv("FUSIONTWEAKER_DB_PATH"); dbPath != "" {
		return dbPath
	}

	// Default to user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory
		return "fusiontweaker.db"
	}

	ftDir := filepath.Join(homeDir, ".fusiontweaker")
	if err := os.MkdirAll(ftDir, 0o755); err == nil {
		return filepath.Join(ftDir, "fusiontweaker.db")
	}

	// Fallback to current directory
	return "fusiontweaker.db"
}

// openHardware opens the register accessor and discovers the
// reference inputs. The caller owns the accessor.
func openHardware() (hwio.Accessor, pstate.References, error) {
	acc, err := hwio.New()
	if err != nil {
		return nil, pstate.References{}, err
	}
	refs := refclock.New(acc).References()
	return acc, refs, nil
}
