package series

import (
	"reflect"
	"testing"
	"time"

	"github.com/gorocky/warroom/internal/model"
)

func snapshotAt(ts time.Time, entries ...model.CompetitorEntry) model.Snapshot {
	return model.Snapshot{Timestamp: ts, Entries: entries}
}

func entry(compID string, points ...model.ProductPoint) model.CompetitorEntry {
	return model.CompetitorEntry{CompetitorID: compID, Products: points}
}

func TestUniverse(t *testing.T) {
	comps := []model.Competitor{
		{ID: "compA", Name: "Competitor A", Mappings: []model.SKUMapping{{SKU: "SKU1"}, {SKU: "SKU2"}}},
		{ID: "compB", Name: "Competitor B", Mappings: []model.SKUMapping{{SKU: "SKU2"}, {SKU: "SKU3"}}},
	}

	skus := Universe(comps)

	expected := []string{"SKU1", "SKU2", "SKU3"}
	if !reflect.DeepEqual(skus, expected) {
		t.Errorf("Expected universe %v, got %v", expected, skus)
	}
}

func TestMarketAverages(t *testing.T) {
	snap := snapshotAt(time.Now(),
		entry("compA", model.ProductPoint{SKU: "SKU1", Price: 10}),
		entry("compB", model.ProductPoint{SKU: "SKU1", Price: 20}),
	)

	avgs := MarketAverages(snap, []string{"SKU1", "SKU2"})

	if avgs["SKU1"] != 15.0 {
		t.Errorf("Expected average 15.0 for SKU1, got %v", avgs["SKU1"])
	}
	if avgs["SKU2"] != 0 {
		t.Errorf("Expected 0 average for SKU with no data, got %v", avgs["SKU2"])
	}
}

func TestMarketAveragesRounding(t *testing.T) {
	snap := snapshotAt(time.Now(),
		entry("compA", model.ProductPoint{SKU: "SKU1", Price: 10.00}),
		entry("compB", model.ProductPoint{SKU: "SKU1", Price: 10.01}),
		entry("compC", model.ProductPoint{SKU: "SKU1", Price: 10.01}),
	)

	avgs := MarketAverages(snap, []string{"SKU1"})

	// 30.02 / 3 = 10.00666... -> 10.01
	if avgs["SKU1"] != 10.01 {
		t.Errorf("Expected rounded average 10.01, got %v", avgs["SKU1"])
	}
}

func TestBuildSeriesLengthMatchesSnapshots(t *testing.T) {
	now := time.Now()
	snapshots := []model.Snapshot{
		snapshotAt(now.Add(-2*time.Hour), entry("compA", model.ProductPoint{SKU: "SKU1", Price: 10})),
		snapshotAt(now.Add(-time.Hour)),
		snapshotAt(now, entry("compA", model.ProductPoint{SKU: "SKU1", Price: 12})),
	}
	skus := []string{"SKU1", "SKU2"}

	bySKU := Build(snapshots, skus)

	for _, sku := range skus {
		if len(bySKU[sku]) != len(snapshots) {
			t.Errorf("Expected series length %d for %s, got %d", len(snapshots), sku, len(bySKU[sku]))
		}
	}
	if !reflect.DeepEqual(bySKU["SKU1"], []float64{10, 0, 12}) {
		t.Errorf("Expected SKU1 series [10 0 12], got %v", bySKU["SKU1"])
	}
	if !reflect.DeepEqual(bySKU["SKU2"], []float64{0, 0, 0}) {
		t.Errorf("Expected all-zero series for unobserved SKU, got %v", bySKU["SKU2"])
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	now := time.Now()
	snapshots := []model.Snapshot{
		snapshotAt(now.Add(-time.Hour),
			entry("compA", model.ProductPoint{SKU: "SKU1", Price: 9.99}),
			entry("compB", model.ProductPoint{SKU: "SKU1", Price: 11.49}, model.ProductPoint{SKU: "SKU2", Price: 5.25}),
		),
		snapshotAt(now,
			entry("compA", model.ProductPoint{SKU: "SKU1", Price: 9.49}),
		),
	}
	skus := []string{"SKU1", "SKU2"}

	first := Build(snapshots, skus)
	second := Build(snapshots, skus)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical output on repeated builds, got %v then %v", first, second)
	}
}

func TestLatest(t *testing.T) {
	if got := Latest(nil); got != 0 {
		t.Errorf("Expected 0 for empty series, got %v", got)
	}
	if got := Latest([]float64{1, 2, 3}); got != 3 {
		t.Errorf("Expected 3, got %v", got)
	}
}
