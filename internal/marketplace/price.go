package marketplace

import (
	"regexp"
	"strconv"
	"strings"
)

var nonPriceChars = regexp.MustCompile(`[^0-9.,]`)

// ParsePrice normalizes a scraped price string ("$1,299.00", "Rp 15.000",
// "₱499") into a float. Unparseable input degrades to 0 rather than
// erroring since malformed listings are routine.
func ParsePrice(priceStr string) float64 {
	cleaned := nonPriceChars.ReplaceAllString(priceStr, "")
	if cleaned == "" {
		return 0
	}

	// Keep only the last separator as the decimal point; everything
	// before it is thousands grouping.
	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	sep := lastDot
	if lastComma > lastDot {
		sep = lastComma
	}
	if sep >= 0 {
		intPart := strings.Map(digitsOnly, cleaned[:sep])
		fracPart := strings.Map(digitsOnly, cleaned[sep+1:])
		cleaned = intPart + "." + fracPart
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

func digitsOnly(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}

// DetectCurrency guesses the currency from a scraped price string. Dollar
// amounts default to USD.
func DetectCurrency(priceStr string) string {
	lower := strings.ToLower(priceStr)
	switch {
	case strings.Contains(priceStr, "S$") || strings.Contains(lower, "sgd"):
		return "SGD"
	case strings.Contains(priceStr, "₱") || strings.Contains(lower, "php"):
		return "PHP"
	case strings.Contains(priceStr, "Rp") || strings.Contains(lower, "idr"):
		return "IDR"
	case strings.Contains(priceStr, "RM") || strings.Contains(lower, "myr"):
		return "MYR"
	case strings.Contains(priceStr, "฿") || strings.Contains(lower, "thb"):
		return "THB"
	case strings.Contains(priceStr, "₫") || strings.Contains(lower, "vnd"):
		return "VND"
	default:
		return "USD"
	}
}
