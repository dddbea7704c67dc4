// Package units extracts pack quantities from free-text product names so
// prices can be compared per unit across differently sized listings.
package units

import (
	"math"
	"regexp"
	"strconv"
)

// Patterns are tried in order; the first match wins. Counts must be tied to
// a unit word so dosage numbers like "1000mg" never read as a quantity.
var quantityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d+)\s*(?:tablets?|tabs?|capsules?|caps?|softgels?|gummies|sachets?|pieces?|pcs?)\b`),
	regexp.MustCompile(`(?i)\b(\d+)\s*(?:count|ct|packs?|pk)\b`),
	regexp.MustCompile(`(?i)\bx\s*(\d+)\b`),
	regexp.MustCompile(`(?i)\b(\d+)\s*x\b`),
}

// ExtractQuantity parses a pack quantity out of a product name. It never
// fails on arbitrary text; absence of a recognizable unit count degrades
// to a quantity of 1.
func ExtractQuantity(name string) int {
	for _, re := range quantityPatterns {
		if m := re.FindStringSubmatch(name); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n
			}
		}
	}
	return 1
}

// PricePerUnit normalizes a pack price to a per-unit price, rounded to
// cents. Quantities below 1 are clamped to 1.
func PricePerUnit(price float64, quantity int) float64 {
	if quantity < 1 {
		quantity = 1
	}
	return round2(price / float64(quantity))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
