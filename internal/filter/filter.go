package filter

import (
	"strings"

	"github.com/dgallion1/docpack/internal/corpus"
)

// Excluded reports whether href falls under any of the excluded path
// prefixes. Records without an href are never excluded on this basis.
func Excluded(href string, prefixes []string) bool {
	if href == "" {
		return false
	}
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(href, p) {
			return true
		}
	}
	return false
}

// Keep reports whether a block survives both the empty-content filter and
// the path exclusion filter. The two predicates are independent, so their
// evaluation order never changes the result set.
func Keep(b corpus.Block, excludePrefixes []string) bool {
	if b.Content == "" {
		return false
	}
	return !Excluded(b.Href, excludePrefixes)
}

// Apply returns the blocks that survive both filters, in input order.
func Apply(blocks []corpus.Block, excludePrefixes []string) []corpus.Block {
	kept := make([]corpus.Block, 0, len(blocks))
	for _, b := range blocks {
		if Keep(b, excludePrefixes) {
			kept = append(kept, b)
		}
	}
	return kept
}
