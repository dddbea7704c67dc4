package marketplace

import (
	"fmt"
	"regexp"
)

// shopeeAdapter recognizes Shopee product URLs across regional domains.
type shopeeAdapter struct {
	urlMatcher
	itemRe *regexp.Regexp
	pathRe *regexp.Regexp
}

func newShopeeAdapter() *shopeeAdapter {
	return &shopeeAdapter{
		urlMatcher: urlMatcher{patterns: []*regexp.Regexp{
			regexp.MustCompile(`shopee\.(com|ph|sg|my|th|vn|tw|co\.id|com\.br)/.*-i\.\d+\.\d+`),
			regexp.MustCompile(`shopee\.(com|ph|sg|my|th|vn|tw|co\.id|com\.br)/product/\d+/\d+`),
		}},
		// shopee.ph/product-name-i.{shopId}.{itemId}
		itemRe: regexp.MustCompile(`-i\.(\d+)\.(\d+)`),
		// shopee.ph/product/{shopId}/{itemId}
		pathRe: regexp.MustCompile(`/product/(\d+)/(\d+)`),
	}
}

func (a *shopeeAdapter) Marketplace() Type { return Shopee }

func (a *shopeeAdapter) ExtractProductID(rawURL string) (string, bool) {
	if m := a.itemRe.FindStringSubmatch(rawURL); m != nil {
		return fmt.Sprintf("%s_%s", m[1], m[2]), true
	}
	if m := a.pathRe.FindStringSubmatch(rawURL); m != nil {
		return fmt.Sprintf("%s_%s", m[1], m[2]), true
	}
	return "", false
}
