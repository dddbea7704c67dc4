package report

import (
	"strings"
	"testing"

	"github.com/gorocky/warroom/internal/engine"
	"github.com/gorocky/warroom/internal/model"
)

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"-5%", "'-5%"},
		{"@cmd", "'@cmd"},
		{"|pipe", "'|pipe"},
		{"SKU1", "SKU1"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EscapeCell(tt.input); got != tt.expected {
			t.Errorf("EscapeCell(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestWriteBattlegroundCSV(t *testing.T) {
	comps := []model.Competitor{
		{ID: "compA", Name: "Competitor A"},
		{ID: "compB", Name: "Competitor B"},
	}
	rows := []engine.Row{
		{
			SKU:              "SKU1",
			OurPrice:         20.70,
			MarketAvg:        20.00,
			VariancePct:      4,
			CompetitorPrices: map[string]float64{"compA": 17.00, "compB": 23.00},
		},
		{SKU: "SKU3", CompetitorPrices: map[string]float64{}},
	}

	var buf strings.Builder
	if err := WriteBattlegroundCSV(&buf, comps, rows); err != nil {
		t.Fatalf("WriteBattlegroundCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "SKU,Our Price,Competitor A,Competitor B,Market Avg,Variance %" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if lines[1] != "SKU1,20.70,17.00,23.00,20.00,4" {
		t.Errorf("Unexpected SKU1 row: %q", lines[1])
	}
	if lines[2] != "SKU3,,,,,0" {
		t.Errorf("Unexpected SKU3 row: %q", lines[2])
	}
}
