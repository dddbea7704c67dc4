// Package alerts detects competitor pricing events from snapshot history
// and evaluates user-configured threshold rules.
package alerts

import (
	"fmt"
	"math"

	"github.com/gorocky/warroom/internal/model"
)

// Kind identifies the class of a detected pricing event.
type Kind string

const (
	// KindCheaper fires when a competitor undercuts the market average.
	KindCheaper Kind = "cheaper"
	// KindDrop fires when a competitor's price fell versus the prior snapshot.
	KindDrop Kind = "drop"
)

// idSuffix is the short token used inside event ids. Dismissal state keys on
// those ids, so the tokens must never change.
func (k Kind) idSuffix() string {
	if k == KindCheaper {
		return "cheap"
	}
	return string(k)
}

// EventID derives the deterministic id for a (competitor, sku, kind) triple.
// Same triple, same id, so dismissals stay stable across re-evaluation.
func EventID(competitorID, sku string, kind Kind) string {
	return fmt.Sprintf("%s-%s-%s", competitorID, sku, kind.idSuffix())
}

// Event is one detected pricing event. Events are recomputed fresh on every
// evaluation pass; only the caller-held dismissed id set survives between
// passes. The numeric fields carry everything a presentation layer needs so
// it never has to recompute from the message text.
type Event struct {
	ID             string  `json:"id"`
	Kind           Kind    `json:"kind"`
	CompetitorID   string  `json:"competitor_id"`
	SKU            string  `json:"sku"`
	OldPrice       float64 `json:"old_price,omitempty"`
	NewPrice       float64 `json:"new_price"`
	MarketAvg      float64 `json:"market_avg"`
	ChangePct      float64 `json:"change_pct,omitempty"`
	SuggestedPrice float64 `json:"suggested_price"`
	Message        string  `json:"message"`
}

// Config holds the detector thresholds. The defaults reproduce the legacy
// hardcoded behavior; surfacing them as config lets rule owners tune them
// without a release.
type Config struct {
	CheaperRatio         float64 // fire when price/marketAvg <= this
	DropThresholdPct     float64 // fire when percent change <= this (negative)
	CheaperSuggestFactor float64 // counter-price multiplier for cheaper events
	DropSuggestFactor    float64 // counter-price multiplier for drop events
}

// DefaultConfig returns the legacy thresholds.
func DefaultConfig() Config {
	return Config{
		CheaperRatio:         0.92,
		DropThresholdPct:     -10,
		CheaperSuggestFactor: 1.04,
		DropSuggestFactor:    1.06,
	}
}

// Detector scans the latest snapshot for cheaper and drop events. It is
// stateless and safe to reuse across evaluation passes.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector with the given thresholds.
func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: cfg}
}

// Detect evaluates every (competitor, sku) pair observed in the latest
// snapshot. Drop events additionally need a matching pair in the snapshot
// immediately prior; with fewer than two snapshots no drop event fires.
// Both kinds may fire for the same pair since their ids differ.
// latestAvgs carries the current market average per SKU.
func (d *Detector) Detect(snapshots []model.Snapshot, latestAvgs map[string]float64) []Event {
	if len(snapshots) == 0 {
		return nil
	}
	latest := snapshots[len(snapshots)-1]
	var prev *model.Snapshot
	if len(snapshots) >= 2 {
		prev = &snapshots[len(snapshots)-2]
	}

	var events []Event
	for _, entry := range latest.Entries {
		for _, p := range entry.Products {
			avg := latestAvgs[p.SKU]
			if avg != 0 && p.Price/avg <= d.cfg.CheaperRatio {
				events = append(events, Event{
					ID:             EventID(entry.CompetitorID, p.SKU, KindCheaper),
					Kind:           KindCheaper,
					CompetitorID:   entry.CompetitorID,
					SKU:            p.SKU,
					NewPrice:       p.Price,
					MarketAvg:      avg,
					SuggestedPrice: round2(p.Price * d.cfg.CheaperSuggestFactor),
					Message: fmt.Sprintf("%s is cheaper for %s ($%.2f) vs market avg $%.2f",
						entry.CompetitorID, p.SKU, p.Price, avg),
				})
			}

			if prev == nil {
				continue
			}
			prior, ok := priorPrice(*prev, entry.CompetitorID, p.SKU)
			if !ok {
				continue
			}
			change := (p.Price - prior) / prior * 100
			if change <= d.cfg.DropThresholdPct {
				events = append(events, Event{
					ID:             EventID(entry.CompetitorID, p.SKU, KindDrop),
					Kind:           KindDrop,
					CompetitorID:   entry.CompetitorID,
					SKU:            p.SKU,
					OldPrice:       prior,
					NewPrice:       p.Price,
					MarketAvg:      avg,
					ChangePct:      change,
					SuggestedPrice: round2(p.Price * d.cfg.DropSuggestFactor),
					Message: fmt.Sprintf("%s %s dropped %d%% to $%.2f",
						entry.CompetitorID, p.SKU, int(math.Round(-change)), p.Price),
				})
			}
		}
	}
	return events
}

// priorPrice looks up the same (competitor, sku) pair in an earlier
// snapshot. Only the competitor's own first entry is consulted.
func priorPrice(snap model.Snapshot, competitorID, sku string) (float64, bool) {
	for _, entry := range snap.Entries {
		if entry.CompetitorID != competitorID {
			continue
		}
		for _, p := range entry.Products {
			if p.SKU == sku {
				return p.Price, true
			}
		}
		return 0, false
	}
	return 0, false
}

// Active filters freshly detected events against the caller-held dismissed
// id set. Dismissal is permanent for an id until the caller clears it;
// clearing restores the event on the next pass if the condition still holds.
func Active(events []Event, dismissed map[string]bool) []Event {
	var out []Event
	for _, e := range events {
		if !dismissed[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
