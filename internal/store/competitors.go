package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gorocky/warroom/internal/model"
)

// CompetitorFile holds the configured competitor roster.
type CompetitorFile struct {
	path string
	mu   sync.Mutex
}

// OpenCompetitors opens a competitor roster file at path.
func OpenCompetitors(path string) *CompetitorFile {
	return &CompetitorFile{path: path}
}

// Load reads the roster. A missing file is an empty roster, not an error.
func (f *CompetitorFile) Load() ([]model.Competitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading competitors: %w", err)
	}

	var comps []model.Competitor
	if err := json.Unmarshal(data, &comps); err != nil {
		return nil, fmt.Errorf("parsing competitors: %w", err)
	}
	return comps, nil
}

// Save replaces the stored roster.
func (f *CompetitorFile) Save(comps []model.Competitor) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(comps, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling competitors: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating competitor dir: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("writing competitors: %w", err)
	}
	return nil
}
