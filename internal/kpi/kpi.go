// Package kpi reduces the per-SKU comparison into the dashboard's headline
// metrics.
package kpi

import (
	"fmt"
	"math"
	"time"

	"github.com/gorocky/warroom/internal/model"
)

// Summary carries the scalar metrics shown in the KPI ticker.
type Summary struct {
	MarketPositionPct float64 `json:"market_position_pct"`
	ActiveAlerts      int     `json:"active_alerts"`
	DataFreshness     string  `json:"data_freshness"`
}

// MarketPosition averages the per-SKU premium over the market:
// (effective - marketAvg) / marketAvg * 100, unweighted across SKUs.
// SKUs with a zero market average are excluded entirely rather than
// counted as 0. The mean is rounded to one decimal place and an empty
// qualifying set yields 0.
func MarketPosition(skus []string, latestAvgs, effective map[string]float64) float64 {
	var sum float64
	var n int
	for _, sku := range skus {
		avg := latestAvgs[sku]
		if avg == 0 {
			continue
		}
		sum += (effective[sku] - avg) / avg * 100
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*10) / 10
}

// Freshness renders how stale the latest snapshot is relative to now.
// No snapshot, or a snapshot without a timestamp, reads "unknown".
func Freshness(now time.Time, snapshots []model.Snapshot) string {
	if len(snapshots) == 0 {
		return "unknown"
	}
	latest := snapshots[len(snapshots)-1]
	if latest.Timestamp.IsZero() {
		return "unknown"
	}

	mins := math.Round(now.Sub(latest.Timestamp).Minutes())
	if mins < 1 {
		return "just now"
	}
	if mins < 60 {
		return fmt.Sprintf("%.0f mins ago", mins)
	}
	return fmt.Sprintf("%.0f hrs ago", math.Round(mins/60))
}
