package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gorocky/warroom/internal/engine"
	"github.com/gorocky/warroom/internal/model"
)

// WriteBattlegroundCSV renders the comparison table as CSV: one row per SKU
// with our price, each competitor's latest price, the market average, and
// the variance versus market. Cells are escaped against formula injection.
func WriteBattlegroundCSV(w io.Writer, comps []model.Competitor, rows []engine.Row) error {
	cw := csv.NewWriter(w)

	header := []string{"SKU", "Our Price"}
	for _, c := range comps {
		header = append(header, c.Name)
	}
	header = append(header, "Market Avg", "Variance %")
	if err := cw.Write(EscapeRow(header)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range rows {
		record := []string{row.SKU, money(row.OurPrice)}
		for _, c := range comps {
			if price, ok := row.CompetitorPrices[c.ID]; ok {
				record = append(record, money(price))
			} else {
				record = append(record, "")
			}
		}
		record = append(record,
			money(row.MarketAvg),
			strconv.FormatFloat(row.VariancePct, 'f', 0, 64),
		)
		if err := cw.Write(EscapeRow(record)); err != nil {
			return fmt.Errorf("writing row for %s: %w", row.SKU, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func money(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
