// Package pricing derives the tracked seller's default prices from the
// latest market averages and layers manual overrides on top.
package pricing

import "math"

// DefaultMarkupFactor is the premium applied over the latest market average.
const DefaultMarkupFactor = 1.035

// baselineOffset is carried over from the legacy pricing formula. It has no
// evident business meaning but is preserved so computed baselines stay
// identical to what existing dashboards show.
const baselineOffset = 0.001

// Pricer computes baseline and effective prices per SKU.
type Pricer struct {
	MarkupFactor float64
}

// New returns a Pricer with the default markup.
func New() *Pricer {
	return &Pricer{MarkupFactor: DefaultMarkupFactor}
}

// NewWithMarkup returns a Pricer with a custom markup factor. A zero or
// negative factor falls back to the default.
func NewWithMarkup(factor float64) *Pricer {
	if factor <= 0 {
		factor = DefaultMarkupFactor
	}
	return &Pricer{MarkupFactor: factor}
}

// Baseline derives the default price from a SKU's latest market average,
// rounded to cents. A SKU with no competitor data ever observed stays at 0.
func (p *Pricer) Baseline(latestAvg float64) float64 {
	if latestAvg == 0 {
		return 0
	}
	return round2(latestAvg*p.MarkupFactor + baselineOffset)
}

// Baselines computes the baseline for every SKU.
func (p *Pricer) Baselines(latestAvgs map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(latestAvgs))
	for sku, avg := range latestAvgs {
		out[sku] = p.Baseline(avg)
	}
	return out
}

// Effective layers user-applied overrides on top of baselines. Overrides
// take unconditional precedence; nothing here validates that an override
// is reasonable.
func (p *Pricer) Effective(baselines, overrides map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(baselines))
	for sku, base := range baselines {
		out[sku] = base
	}
	for sku, price := range overrides {
		out[sku] = price
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
