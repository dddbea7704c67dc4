// Package marketplace identifies which marketplace a competitor URL belongs
// to and hosts the per-marketplace scrape adapters. Actual page fetching is
// an external producer concern behind the Provider interface; this package
// owns URL dispatch, product-id extraction, and price-string normalization.
package marketplace

import (
	"net/url"
	"strings"
)

// Type identifies a supported marketplace.
type Type string

const (
	Shopee              Type = "shopee"
	Lazada              Type = "lazada"
	Amazon              Type = "amazon"
	Tokopedia           Type = "tokopedia"
	Bukalapak           Type = "bukalapak"
	FacebookMarketplace Type = "facebook_marketplace"
	Custom              Type = "custom"
)

// Config describes one marketplace's static configuration.
type Config struct {
	ID        Type   `json:"id"`
	Name      string `json:"name"`
	BaseURL   string `json:"base_url"`
	Enabled   bool   `json:"enabled"`
	RateLimit int    `json:"rate_limit"` // requests per minute
}

// Supported lists every marketplace the system knows about.
// Facebook Marketplace needs special session handling and stays disabled.
func Supported() []Config {
	return []Config{
		{ID: Shopee, Name: "Shopee", BaseURL: "https://shopee.com", Enabled: true, RateLimit: 30},
		{ID: Lazada, Name: "Lazada", BaseURL: "https://lazada.com", Enabled: true, RateLimit: 30},
		{ID: Amazon, Name: "Amazon", BaseURL: "https://amazon.com", Enabled: true, RateLimit: 20},
		{ID: Tokopedia, Name: "Tokopedia", BaseURL: "https://tokopedia.com", Enabled: true, RateLimit: 30},
		{ID: Bukalapak, Name: "Bukalapak", BaseURL: "https://bukalapak.com", Enabled: true, RateLimit: 30},
		{ID: FacebookMarketplace, Name: "Facebook Marketplace", BaseURL: "https://facebook.com/marketplace", Enabled: false, RateLimit: 10},
		{ID: Custom, Name: "Custom Website", BaseURL: "", Enabled: true, RateLimit: 60},
	}
}

// ConfigFor returns the configuration for a marketplace id.
func ConfigFor(id Type) (Config, bool) {
	for _, c := range Supported() {
		if c.ID == id {
			return c, true
		}
	}
	return Config{}, false
}

// Detect maps a URL to a marketplace by hostname fragment. Unrecognized
// URLs fall through to Custom rather than failing.
func Detect(rawURL string) Type {
	lower := strings.ToLower(rawURL)
	switch {
	case strings.Contains(lower, "shopee."):
		return Shopee
	case strings.Contains(lower, "lazada."):
		return Lazada
	case strings.Contains(lower, "amazon."):
		return Amazon
	case strings.Contains(lower, "tokopedia."):
		return Tokopedia
	case strings.Contains(lower, "bukalapak."):
		return Bukalapak
	case strings.Contains(lower, "facebook.com/marketplace"):
		return FacebookMarketplace
	default:
		return Custom
	}
}

// ValidateURL checks that a URL parses and plausibly belongs to the given
// marketplace. Custom accepts any parseable URL.
func ValidateURL(rawURL string, id Type) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if _, ok := ConfigFor(id); !ok {
		return false
	}
	if id == Custom {
		return true
	}
	fragment := strings.ReplaceAll(string(id), "_", ".")
	return strings.Contains(parsed.Hostname(), fragment) || Detect(rawURL) == id
}
