package alerts

import (
	"testing"
	"time"

	"github.com/gorocky/warroom/internal/model"
)

func snap(ts time.Time, entries ...model.CompetitorEntry) model.Snapshot {
	return model.Snapshot{Timestamp: ts, Entries: entries}
}

func entry(compID string, points ...model.ProductPoint) model.CompetitorEntry {
	return model.CompetitorEntry{CompetitorID: compID, Products: points}
}

func findEvent(events []Event, id string) *Event {
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}

func TestCheaperAlert(t *testing.T) {
	d := NewDetector(DefaultConfig())
	now := time.Now()
	snapshots := []model.Snapshot{
		snap(now, entry("compA", model.ProductPoint{SKU: "SKU1", Price: 9.00})),
	}
	avgs := map[string]float64{"SKU1": 10.00}

	events := d.Detect(snapshots, avgs)

	e := findEvent(events, "compA-SKU1-cheap")
	if e == nil {
		t.Fatalf("Expected cheaper alert, got %v", events)
	}
	if e.Kind != KindCheaper {
		t.Errorf("Expected kind %q, got %q", KindCheaper, e.Kind)
	}
	if e.SuggestedPrice != 9.36 {
		t.Errorf("Expected suggested price 9.36, got %v", e.SuggestedPrice)
	}
	if e.MarketAvg != 10.00 || e.NewPrice != 9.00 {
		t.Errorf("Expected event to carry avg 10.00 and price 9.00, got %+v", e)
	}
}

func TestCheaperAlertBoundary(t *testing.T) {
	d := NewDetector(DefaultConfig())
	now := time.Now()

	// 9.20 / 10.00 = 0.92, on the threshold: fires.
	events := d.Detect(
		[]model.Snapshot{snap(now, entry("compA", model.ProductPoint{SKU: "SKU1", Price: 9.20}))},
		map[string]float64{"SKU1": 10.00},
	)
	if findEvent(events, "compA-SKU1-cheap") == nil {
		t.Error("Expected cheaper alert at the 92% boundary")
	}

	// 9.30 / 10.00 = 0.93, above the threshold: silent.
	events = d.Detect(
		[]model.Snapshot{snap(now, entry("compA", model.ProductPoint{SKU: "SKU1", Price: 9.30}))},
		map[string]float64{"SKU1": 10.00},
	)
	if len(events) != 0 {
		t.Errorf("Expected no alert above the boundary, got %v", events)
	}
}

func TestCheaperAlertNeedsNonzeroAverage(t *testing.T) {
	d := NewDetector(DefaultConfig())
	events := d.Detect(
		[]model.Snapshot{snap(time.Now(), entry("compA", model.ProductPoint{SKU: "SKU1", Price: 1.00}))},
		map[string]float64{"SKU1": 0},
	)
	if len(events) != 0 {
		t.Errorf("Expected no alert with zero market average, got %v", events)
	}
}

func TestDropAlert(t *testing.T) {
	d := NewDetector(DefaultConfig())
	now := time.Now()
	snapshots := []model.Snapshot{
		snap(now.Add(-time.Hour), entry("compA", model.ProductPoint{SKU: "SKU1", Price: 20.00})),
		snap(now, entry("compA", model.ProductPoint{SKU: "SKU1", Price: 17.00})),
	}

	events := d.Detect(snapshots, map[string]float64{"SKU1": 17.00})

	e := findEvent(events, "compA-SKU1-drop")
	if e == nil {
		t.Fatalf("Expected drop alert for a 15%% fall, got %v", events)
	}
	if e.OldPrice != 20.00 || e.NewPrice != 17.00 {
		t.Errorf("Expected old 20.00 and new 17.00 on the event, got %+v", e)
	}
	if e.SuggestedPrice != 18.02 {
		t.Errorf("Expected suggested price 18.02, got %v", e.SuggestedPrice)
	}
	if e.ChangePct != -15.0 {
		t.Errorf("Expected change -15.0, got %v", e.ChangePct)
	}
}

func TestNoDropAlertWithoutPriorPair(t *testing.T) {
	d := NewDetector(DefaultConfig())
	now := time.Now()
	snapshots := []model.Snapshot{
		snap(now.Add(-time.Hour), entry("compB", model.ProductPoint{SKU: "SKU1", Price: 20.00})),
		snap(now, entry("compA", model.ProductPoint{SKU: "SKU1", Price: 10.00})),
	}

	events := d.Detect(snapshots, map[string]float64{"SKU1": 15.00})

	if findEvent(events, "compA-SKU1-drop") != nil {
		t.Error("Expected no drop alert when the pair is absent from the prior snapshot")
	}
}

func TestNoDropAlertWithSingleSnapshot(t *testing.T) {
	d := NewDetector(DefaultConfig())
	events := d.Detect(
		[]model.Snapshot{snap(time.Now(), entry("compA", model.ProductPoint{SKU: "SKU1", Price: 5.00}))},
		map[string]float64{"SKU1": 20.00},
	)
	if findEvent(events, "compA-SKU1-drop") != nil {
		t.Error("Expected no drop alert with fewer than two snapshots")
	}
}

func TestBothKindsFireForSamePair(t *testing.T) {
	d := NewDetector(DefaultConfig())
	now := time.Now()
	snapshots := []model.Snapshot{
		snap(now.Add(-time.Hour), entry("compA", model.ProductPoint{SKU: "SKU1", Price: 20.00})),
		snap(now, entry("compA", model.ProductPoint{SKU: "SKU1", Price: 9.00})),
	}

	events := d.Detect(snapshots, map[string]float64{"SKU1": 10.00})

	if findEvent(events, "compA-SKU1-cheap") == nil || findEvent(events, "compA-SKU1-drop") == nil {
		t.Errorf("Expected both kinds for the same pair, got %v", events)
	}
}

func TestDetectEmptyHistory(t *testing.T) {
	d := NewDetector(DefaultConfig())
	if events := d.Detect(nil, nil); events != nil {
		t.Errorf("Expected no events for empty history, got %v", events)
	}
}

func TestDismissalPersistence(t *testing.T) {
	d := NewDetector(DefaultConfig())
	now := time.Now()
	snapshots := []model.Snapshot{
		snap(now, entry("compA", model.ProductPoint{SKU: "SKU1", Price: 9.00})),
	}
	avgs := map[string]float64{"SKU1": 10.00}
	dismissed := map[string]bool{"compA-SKU1-cheap": true}

	// Dismissed on every pass with identical inputs.
	for i := 0; i < 3; i++ {
		active := Active(d.Detect(snapshots, avgs), dismissed)
		if len(active) != 0 {
			t.Fatalf("Pass %d: expected dismissed event to stay hidden, got %v", i, active)
		}
	}

	// Clearing the id restores the event while the condition still holds.
	delete(dismissed, "compA-SKU1-cheap")
	active := Active(d.Detect(snapshots, avgs), dismissed)
	if len(active) != 1 {
		t.Errorf("Expected event restored after undismissal, got %v", active)
	}
}
