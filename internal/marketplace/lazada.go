package marketplace

import (
	"net/url"
	"regexp"
)

// lazadaAdapter recognizes Lazada product URLs across regional domains.
type lazadaAdapter struct {
	urlMatcher
	itemRe *regexp.Regexp
}

func newLazadaAdapter() *lazadaAdapter {
	return &lazadaAdapter{
		urlMatcher: urlMatcher{patterns: []*regexp.Regexp{
			regexp.MustCompile(`lazada\.(com\.ph|sg|com\.my|co\.th|vn|co\.id)/products/.*-i\d+`),
			regexp.MustCompile(`lazada\.(com\.ph|sg|com\.my|co\.th|vn|co\.id)/.*\.html`),
		}},
		// lazada.com.ph/products/product-name-i{itemId}.html
		itemRe: regexp.MustCompile(`-i(\d+)`),
	}
}

func (a *lazadaAdapter) Marketplace() Type { return Lazada }

func (a *lazadaAdapter) ExtractProductID(rawURL string) (string, bool) {
	if m := a.itemRe.FindStringSubmatch(rawURL); m != nil {
		return m[1], true
	}
	if parsed, err := url.Parse(rawURL); err == nil {
		if itemID := parsed.Query().Get("itemId"); itemID != "" {
			return itemID, true
		}
	}
	return "", false
}
