package marketplace

import (
	"context"
	"regexp"

	"github.com/gorocky/warroom/internal/model"
)

// Adapter recognizes one marketplace's product URLs. Adapters own URL
// validation and product-id extraction; fetching the page itself is the
// Provider's job.
type Adapter interface {
	Marketplace() Type
	ValidateURL(rawURL string) bool
	ExtractProductID(rawURL string) (string, bool)
}

// Provider is the external data-producer boundary. Implementations fetch a
// live listing for a product URL; none ship in this module since scraping
// happens outside the engine's scope.
type Provider interface {
	Available() bool
	Fetch(ctx context.Context, rawURL string) (*model.ScrapedProduct, error)
}

// urlMatcher gives adapters a shared pattern-based ValidateURL.
type urlMatcher struct {
	patterns []*regexp.Regexp
}

func (m urlMatcher) ValidateURL(rawURL string) bool {
	for _, p := range m.patterns {
		if p.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// registry holds one adapter per marketplace, keyed by id. A plain map plus
// the shared URL validation is all the dispatch the polymorphic adapter
// pattern needs.
var registry = map[Type]Adapter{
	Shopee: newShopeeAdapter(),
	Lazada: newLazadaAdapter(),
	Amazon: newAmazonAdapter(),
}

// AdapterFor returns the adapter registered for a marketplace.
func AdapterFor(id Type) (Adapter, bool) {
	a, ok := registry[id]
	return a, ok
}

// AdapterForURL finds the first registered adapter whose patterns accept
// the URL, or nil if none do.
func AdapterForURL(rawURL string) Adapter {
	for _, id := range []Type{Shopee, Lazada, Amazon} {
		if a := registry[id]; a.ValidateURL(rawURL) {
			return a
		}
	}
	return nil
}
