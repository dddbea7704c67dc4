// Package engine composes the series, pricing, alert, and KPI stages into a
// single evaluation pass over a snapshot history. Every entry point is a
// total function of its arguments; nothing here mutates shared state, so
// concurrent callers only need to hand each call its own point-in-time view
// of the inputs.
package engine

import (
	"math"
	"time"

	"github.com/gorocky/warroom/internal/alerts"
	"github.com/gorocky/warroom/internal/kpi"
	"github.com/gorocky/warroom/internal/model"
	"github.com/gorocky/warroom/internal/pricing"
	"github.com/gorocky/warroom/internal/series"
)

// Engine evaluates snapshot histories into reports.
type Engine struct {
	pricer   *pricing.Pricer
	detector *alerts.Detector
}

// New returns an engine with the default markup and detector thresholds.
func New() *Engine {
	return NewWithConfig(pricing.DefaultMarkupFactor, alerts.DefaultConfig())
}

// NewWithConfig returns an engine with custom pricing and detector settings.
func NewWithConfig(markupFactor float64, detectorCfg alerts.Config) *Engine {
	return &Engine{
		pricer:   pricing.NewWithMarkup(markupFactor),
		detector: alerts.NewDetector(detectorCfg),
	}
}

// Input is everything one evaluation pass reads. Overrides and Dismissed are
// the caller-held side tables; the engine only ever reads them.
type Input struct {
	Snapshots   []model.Snapshot
	Competitors []model.Competitor
	Rules       []model.AlertRule
	Overrides   map[string]float64
	Dismissed   map[string]bool
}

// Row is one battleground-table line for a SKU.
type Row struct {
	SKU              string             `json:"sku"`
	OurPrice         float64            `json:"our_price"`
	MarketAvg        float64            `json:"market_avg"`
	VariancePct      float64            `json:"variance_pct"`
	CompetitorPrices map[string]float64 `json:"competitor_prices"`
	Trend            []float64          `json:"trend"`
}

// RuleMatch records a configured rule firing for a (competitor, sku) pair.
type RuleMatch struct {
	Rule          model.AlertRule `json:"rule"`
	CompetitorID  string          `json:"competitor_id"`
	SKU           string          `json:"sku"`
	CurrentPrice  float64         `json:"current_price"`
	PreviousPrice float64         `json:"previous_price"`
}

// Report is the outcome of one evaluation pass.
type Report struct {
	KPIs        kpi.Summary    `json:"kpis"`
	Alerts      []alerts.Event `json:"alerts"`
	RuleMatches []RuleMatch    `json:"rule_matches,omitempty"`
	Table       []Row          `json:"table"`
}

// Evaluate runs one full pass: series, baselines, alerts, rules, KPIs.
func (e *Engine) Evaluate(now time.Time, in Input) Report {
	skus := series.Universe(in.Competitors)
	bySKU := series.Build(in.Snapshots, skus)
	latestAvgs := series.LatestBySKU(bySKU)

	baselines := e.pricer.Baselines(latestAvgs)
	effective := e.pricer.Effective(baselines, in.Overrides)

	events := e.detector.Detect(in.Snapshots, latestAvgs)
	active := alerts.Active(events, in.Dismissed)

	return Report{
		KPIs: kpi.Summary{
			MarketPositionPct: kpi.MarketPosition(skus, latestAvgs, effective),
			ActiveAlerts:      len(active),
			DataFreshness:     kpi.Freshness(now, in.Snapshots),
		},
		Alerts:      active,
		RuleMatches: e.evaluateRules(in),
		Table:       buildTable(skus, in, bySKU, latestAvgs, effective),
	}
}

// evaluateRules checks the configured rule set against every (competitor,
// sku) pair observed in the latest snapshot. Snapshots carry no stock data,
// so both stock flags are true here and stock conditions stay inert; the
// scrape boundary evaluates those against ScrapedProduct observations.
func (e *Engine) evaluateRules(in Input) []RuleMatch {
	if len(in.Rules) == 0 || len(in.Snapshots) == 0 {
		return nil
	}
	latest := in.Snapshots[len(in.Snapshots)-1]
	var prev *model.Snapshot
	if len(in.Snapshots) >= 2 {
		prev = &in.Snapshots[len(in.Snapshots)-2]
	}

	var matches []RuleMatch
	for _, entry := range latest.Entries {
		for _, p := range entry.Products {
			obs := alerts.Observation{
				CurrentPrice:    p.Price,
				CurrentInStock:  true,
				PreviousInStock: true,
			}
			if prev != nil {
				obs.PreviousPrice = previousPrice(*prev, entry.CompetitorID, p.SKU)
			}
			for _, r := range alerts.Fired(in.Rules, obs) {
				matches = append(matches, RuleMatch{
					Rule:          r,
					CompetitorID:  entry.CompetitorID,
					SKU:           p.SKU,
					CurrentPrice:  p.Price,
					PreviousPrice: obs.PreviousPrice,
				})
			}
		}
	}
	return matches
}

func previousPrice(snap model.Snapshot, competitorID, sku string) float64 {
	for _, entry := range snap.Entries {
		if entry.CompetitorID != competitorID {
			continue
		}
		for _, p := range entry.Products {
			if p.SKU == sku {
				return p.Price
			}
		}
		return 0
	}
	return 0
}

func buildTable(skus []string, in Input, bySKU map[string][]float64, latestAvgs, effective map[string]float64) []Row {
	var latest *model.Snapshot
	if len(in.Snapshots) > 0 {
		latest = &in.Snapshots[len(in.Snapshots)-1]
	}

	rows := make([]Row, 0, len(skus))
	for _, sku := range skus {
		row := Row{
			SKU:              sku,
			OurPrice:         effective[sku],
			MarketAvg:        latestAvgs[sku],
			CompetitorPrices: make(map[string]float64),
			Trend:            bySKU[sku],
		}
		if row.MarketAvg != 0 {
			row.VariancePct = math.Round((row.OurPrice - row.MarketAvg) / row.MarketAvg * 100)
		}
		if latest != nil {
			for _, comp := range in.Competitors {
				for _, entry := range latest.Entries {
					if entry.CompetitorID != comp.ID {
						continue
					}
					for _, p := range entry.Products {
						if p.SKU == sku {
							row.CompetitorPrices[comp.ID] = p.Price
							break
						}
					}
					break
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}
