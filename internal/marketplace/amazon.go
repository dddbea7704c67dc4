package marketplace

import "regexp"

const amazonTLDs = `(com|co\.uk|de|fr|it|es|ca|com\.au|co\.jp|in|com\.mx|com\.br|nl|sg|ae|sa|se|pl|eg|tr)`

// amazonAdapter recognizes Amazon product URLs and extracts the ASIN.
type amazonAdapter struct {
	urlMatcher
	dpRe *regexp.Regexp
	gpRe *regexp.Regexp
}

func newAmazonAdapter() *amazonAdapter {
	return &amazonAdapter{
		urlMatcher: urlMatcher{patterns: []*regexp.Regexp{
			regexp.MustCompile(`amazon\.` + amazonTLDs + `/.*/dp/[A-Z0-9]+`),
			regexp.MustCompile(`amazon\.` + amazonTLDs + `/dp/[A-Z0-9]+`),
			regexp.MustCompile(`amazon\.` + amazonTLDs + `/gp/product/[A-Z0-9]+`),
		}},
		dpRe: regexp.MustCompile(`/dp/([A-Z0-9]+)`),
		gpRe: regexp.MustCompile(`/gp/product/([A-Z0-9]+)`),
	}
}

func (a *amazonAdapter) Marketplace() Type { return Amazon }

func (a *amazonAdapter) ExtractProductID(rawURL string) (string, bool) {
	if m := a.dpRe.FindStringSubmatch(rawURL); m != nil {
		return m[1], true
	}
	if m := a.gpRe.FindStringSubmatch(rawURL); m != nil {
		return m[1], true
	}
	return "", false
}
