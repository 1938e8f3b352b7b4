package store

import (
	"context"
	"time"
)

// DefaultRecentLimit is how many lines Recent returns when asked for 0.
const DefaultRecentLimit = 500

// HistoryEntry is one answer line entered during a run.
type HistoryEntry struct {
	ID        int64
	RunID     string
	Line      string
	CreatedAt time.Time
}

// HistoryRepo persists answer lines across runs.
type HistoryRepo interface {
	// Append stores line for the run runID.
	Append(ctx context.Context, runID, line string) error

	// Recent returns up to limit of the newest entries, oldest first.
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)

	// Clear deletes all entries and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
}

// Lines returns the Line of each entry.
func Lines(entries []HistoryEntry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line
	}
	return lines
}
