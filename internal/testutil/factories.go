// Package testutil generates deterministic fixture data for tests.
package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gorocky/warroom/internal/model"
)

// Factory produces seeded pseudo-random fixtures so failures reproduce.
type Factory struct {
	rand *rand.Rand
}

// NewFactory creates a factory. A zero seed falls back to the clock.
func NewFactory(seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{rand: rand.New(rand.NewSource(seed))}
}

// SKUs returns n distinct SKU identifiers.
func (f *Factory) SKUs(n int) []string {
	skus := make([]string, n)
	for i := range skus {
		skus[i] = fmt.Sprintf("SKU-%03d", i+1)
	}
	return skus
}

// Competitors returns n competitors, each mapped to every given SKU.
func (f *Factory) Competitors(n int, skus []string) []model.Competitor {
	comps := make([]model.Competitor, n)
	for i := range comps {
		mappings := make([]model.SKUMapping, len(skus))
		for j, sku := range skus {
			mappings[j] = model.SKUMapping{SKU: sku}
		}
		comps[i] = model.Competitor{
			ID:       fmt.Sprintf("comp-%02d", i+1),
			Name:     fmt.Sprintf("Competitor %d", i+1),
			Mappings: mappings,
		}
	}
	return comps
}

// Price returns a price between $5.00 and $500.00 rounded to cents.
func (f *Factory) Price() float64 {
	cents := f.rand.Intn(49500) + 500
	return float64(cents) / 100
}

// Snapshots returns n chronological snapshots ending at the given time,
// spaced an hour apart, with every competitor quoting every SKU.
func (f *Factory) Snapshots(n int, end time.Time, comps []model.Competitor, skus []string) []model.Snapshot {
	snapshots := make([]model.Snapshot, n)
	for i := range snapshots {
		entries := make([]model.CompetitorEntry, len(comps))
		for j, c := range comps {
			points := make([]model.ProductPoint, len(skus))
			for k, sku := range skus {
				points[k] = model.ProductPoint{SKU: sku, Price: f.Price()}
			}
			entries[j] = model.CompetitorEntry{CompetitorID: c.ID, Products: points}
		}
		snapshots[i] = model.Snapshot{
			Timestamp: end.Add(-time.Duration(n-1-i) * time.Hour),
			Entries:   entries,
		}
	}
	return snapshots
}
