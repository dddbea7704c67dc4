package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gorocky/warroom/internal/model"
)

// Inbox consumes snapshots dropped as JSON files by an external producer
// (the scrape pipeline writes, we read-and-remove). It satisfies the
// scheduler's Source interface so a file drop is all a producer needs.
type Inbox struct {
	path string
}

// NewInbox returns an inbox reading from path.
func NewInbox(path string) *Inbox {
	return &Inbox{path: path}
}

// FetchSnapshot reads and consumes the pending snapshot file. A missing
// file means the producer has nothing new; callers treat that error as a
// quiet skip.
func (i *Inbox) FetchSnapshot(ctx context.Context) (model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.Snapshot{}, err
	}

	data, err := os.ReadFile(i.path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("reading inbox: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("parsing inbox snapshot: %w", err)
	}

	if err := os.Remove(i.path); err != nil {
		return model.Snapshot{}, fmt.Errorf("consuming inbox: %w", err)
	}
	return snap, nil
}
