package search

import (
	"strings"

	"github.com/mmcdole/shopr/internal/domain"
	"github.com/sahilm/fuzzy"
)

// FilterMatch is one product of the loaded page that matched a local filter
type FilterMatch struct {
	Index          int   // Index into the page's products
	MatchedIndexes []int // Character positions in the name (for highlighting)
}

// productNames implements sahilm/fuzzy.Source over lowercase product names
type productNames []string

func (p productNames) String(i int) string { return p[i] }
func (p productNames) Len() int            { return len(p) }

// FilterPage fuzzy-matches product names on the already loaded page.
// It narrows what is shown and never issues a catalog query.
// An empty query returns nil, meaning "no filter".
func FilterPage(query string, products []domain.Product) []FilterMatch {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	names := make(productNames, len(products))
	for i, p := range products {
		names[i] = strings.ToLower(p.Name)
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), names)

	out := make([]FilterMatch, len(matches))
	for i, m := range matches {
		out[i] = FilterMatch{Index: m.Index, MatchedIndexes: m.MatchedIndexes}
	}
	return out
}
