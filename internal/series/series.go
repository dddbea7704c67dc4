// Package series turns an ordered snapshot history into per-SKU market
// average time series.
package series

import (
	"math"

	"github.com/gorocky/warroom/internal/model"
)

// Universe returns the union of all SKUs the competitors are mapped to,
// ordered by first appearance so downstream table output stays stable.
// SKUs without any observed price data are still part of the universe.
func Universe(comps []model.Competitor) []string {
	seen := make(map[string]bool)
	var skus []string
	for _, c := range comps {
		for _, m := range c.Mappings {
			if !seen[m.SKU] {
				seen[m.SKU] = true
				skus = append(skus, m.SKU)
			}
		}
	}
	return skus
}

// MarketAverages computes the per-SKU mean competitor price for one
// snapshot, rounded to cents. Each competitor contributes at most one price
// per SKU and all competitors weigh equally. A SKU with no observed price
// averages to 0.
func MarketAverages(snap model.Snapshot, skus []string) map[string]float64 {
	avgs := make(map[string]float64, len(skus))
	for _, sku := range skus {
		var sum float64
		var n int
		for _, entry := range snap.Entries {
			for _, p := range entry.Products {
				if p.SKU == sku {
					sum += p.Price
					n++
					break
				}
			}
		}
		if n == 0 {
			avgs[sku] = 0
			continue
		}
		avgs[sku] = round2(sum / float64(n))
	}
	return avgs
}

// Build produces, per SKU, the market-average series aligned index-for-index
// with the snapshot sequence. Pure function of its inputs: calling it twice
// on the same history yields identical output, and no caching is kept since
// histories are bounded by a dashboard's practical window.
func Build(snapshots []model.Snapshot, skus []string) map[string][]float64 {
	out := make(map[string][]float64, len(skus))
	for _, sku := range skus {
		out[sku] = make([]float64, 0, len(snapshots))
	}
	for _, snap := range snapshots {
		avgs := MarketAverages(snap, skus)
		for _, sku := range skus {
			out[sku] = append(out[sku], avgs[sku])
		}
	}
	return out
}

// Latest returns the most recent value of a series, 0 when empty.
func Latest(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1]
}

// LatestBySKU reduces a series map to its most recent value per SKU.
func LatestBySKU(seriesBySKU map[string][]float64) map[string]float64 {
	out := make(map[string]float64, len(seriesBySKU))
	for sku, values := range seriesBySKU {
		out[sku] = Latest(values)
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
