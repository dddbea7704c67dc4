// Package store persists the snapshot history and competitor roster as JSON
// files. It is the file-backed implementation of the data-fetch boundary;
// callers load a point-in-time view and hand it to the engine.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gorocky/warroom/internal/model"
)

// SnapshotStore holds an append-only snapshot history, oldest first.
type SnapshotStore struct {
	path string
	keep int // most recent snapshots retained, 0 = unlimited
	mu   sync.Mutex
}

// OpenSnapshots opens a snapshot store at path. keep bounds the history to
// the most recent n snapshots on append; 0 keeps everything.
func OpenSnapshots(path string, keep int) *SnapshotStore {
	return &SnapshotStore{path: path, keep: keep}
}

// Load reads the full history. A missing file is an empty history, not an
// error.
func (s *SnapshotStore) Load() ([]model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *SnapshotStore) load() ([]model.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshots: %w", err)
	}

	var snapshots []model.Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("parsing snapshots: %w", err)
	}
	return snapshots, nil
}

// Save replaces the stored history.
func (s *SnapshotStore) Save(snapshots []model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(snapshots)
}

func (s *SnapshotStore) save(snapshots []model.Snapshot) error {
	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshots: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshots: %w", err)
	}
	return nil
}

// Append adds a snapshot to the end of the history, trims to the retention
// bound, persists, and returns the updated history.
func (s *SnapshotStore) Append(snap model.Snapshot) ([]model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshots, err := s.load()
	if err != nil {
		return nil, err
	}
	snapshots = append(snapshots, snap)
	if s.keep > 0 && len(snapshots) > s.keep {
		snapshots = snapshots[len(snapshots)-s.keep:]
	}
	if err := s.save(snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// Latest returns the most recent snapshot, reporting whether one exists.
func (s *SnapshotStore) Latest() (model.Snapshot, bool, error) {
	snapshots, err := s.Load()
	if err != nil || len(snapshots) == 0 {
		return model.Snapshot{}, false, err
	}
	return snapshots[len(snapshots)-1], true, nil
}
