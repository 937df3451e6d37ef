// Package links implements the href listing mode. No grouping, no content
// transformation.
package links

import (
	"fmt"
	"io"

	"github.com/dgallion1/docpack/internal/corpus"
)

// Link pairs an href with its position in the listing.
type Link struct {
	Index int    `json:"index"`
	Href  string `json:"href"`
}

// Extract enumerates every record's href in input order, skipping records
// without one. Indexes are 1-based and count listed records only.
func Extract(blocks []corpus.Block) []Link {
	var out []Link
	for _, b := range blocks {
		if b.Href == "" {
			continue
		}
		out = append(out, Link{Index: len(out) + 1, Href: b.Href})
	}
	return out
}

// Write prints one link per line in "N. href" form.
func Write(w io.Writer, ls []Link) error {
	for _, l := range ls {
		if _, err := fmt.Fprintf(w, "%d. %s\n", l.Index, l.Href); err != nil {
			return err
		}
	}
	return nil
}
