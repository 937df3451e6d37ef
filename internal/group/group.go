package group

import (
	"strings"

	"github.com/dgallion1/docpack/internal/corpus"
)

// Key identifies one section bucket within a chapter.
type Key struct {
	Chapter string
	Section string
}

// Entry is one grouped record: the residual breadcrumb title and the
// block's content.
type Entry struct {
	Title   string
	Content string
}

// Grouping is the result of folding flat records into ordered
// (chapter, section) buckets. It is built in a single pass and not mutated
// afterward; rendering is a separate pure transform over it.
type Grouping struct {
	order   []Key
	entries map[Key][]Entry
}

func newGrouping() *Grouping {
	return &Grouping{entries: make(map[Key][]Entry)}
}

func (g *Grouping) add(k Key, e Entry) {
	if _, seen := g.entries[k]; !seen {
		g.order = append(g.order, k)
	}
	g.entries[k] = append(g.entries[k], e)
}

// Keys returns the non-empty buckets in output order.
func (g *Grouping) Keys() []Key {
	return g.order
}

// Entries returns the bucket's records in original block order.
func (g *Grouping) Entries(k Key) []Entry {
	return g.entries[k]
}

// Total counts all grouped entries across buckets.
func (g *Grouping) Total() int {
	n := 0
	for _, es := range g.entries {
		n += len(es)
	}
	return n
}

// GroupFixed folds blocks into the buckets a fixed schema declares. Blocks
// whose breadcrumbs match no configured chapter+section are left out. Output
// order follows the schema declaration, skipping empty buckets.
func GroupFixed(blocks []corpus.Block, schema Schema) *Grouping {
	g := newGrouping()
	for _, b := range blocks {
		chapter, section, title, ok := schema.Match(b.Breadcrumbs)
		if !ok {
			continue
		}
		g.add(Key{Chapter: chapter, Section: section}, Entry{Title: title, Content: b.Content})
	}

	ordered := make([]Key, 0, len(g.order))
	for _, ch := range schema.Chapters {
		for _, sec := range ch.Sections {
			k := Key{Chapter: ch.Name, Section: sec}
			if len(g.entries[k]) > 0 {
				ordered = append(ordered, k)
			}
		}
	}
	g.order = ordered
	return g
}

// GroupDiscovered folds blocks into buckets discovered from the data itself:
// chapter = first two segments joined, section = third segment. Discovery
// runs over the unfiltered sequence and considers every record with at least
// three segments; population runs over the filtered sequence and requires at
// least four, so the residual title is never empty. Records that match no
// discovered bucket are silently dropped. Bucket order is first-discovery
// order, restricted to buckets that end up populated.
func GroupDiscovered(all, filtered []corpus.Block) *Grouping {
	discovered := make(map[Key]bool)
	var discoveryOrder []Key
	for _, b := range all {
		bc := b.Breadcrumbs
		if len(bc) < 3 {
			continue
		}
		k := Key{Chapter: bc[0] + corpus.Separator + bc[1], Section: bc[2]}
		if !discovered[k] {
			discovered[k] = true
			discoveryOrder = append(discoveryOrder, k)
		}
	}

	g := newGrouping()
	for _, b := range filtered {
		bc := b.Breadcrumbs
		if len(bc) < 4 {
			continue
		}
		k := Key{Chapter: bc[0] + corpus.Separator + bc[1], Section: bc[2]}
		if !discovered[k] {
			continue
		}
		g.add(k, Entry{Title: strings.Join(bc[3:], corpus.Separator), Content: b.Content})
	}

	ordered := make([]Key, 0, len(g.order))
	for _, k := range discoveryOrder {
		if len(g.entries[k]) > 0 {
			ordered = append(ordered, k)
		}
	}
	g.order = ordered
	return g
}
