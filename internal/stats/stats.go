package stats

import (
	"sort"

	"github.com/dgallion1/docpack/internal/corpus"
	"github.com/dgallion1/docpack/internal/filter"
	"github.com/dgallion1/docpack/internal/group"
)

// Report aggregates the numbers printed after a run. It is derived from
// in-memory data only, after the output files are already on disk, so a
// failure while reporting can never cost us the primary output.
type Report struct {
	InputBlocks  int `json:"input_blocks"`
	KeptBlocks   int `json:"kept_blocks"`
	DroppedEmpty int `json:"dropped_empty"`
	DroppedHref  int `json:"dropped_href"`

	Chapters int `json:"chapters,omitempty"`
	Sections int `json:"sections,omitempty"`

	PrettyBeforeBytes   int `json:"pretty_before_bytes,omitempty"`
	PrettyAfterBytes    int `json:"pretty_after_bytes,omitempty"`
	MinifiedBeforeBytes int `json:"minified_before_bytes,omitempty"`
	MinifiedAfterBytes  int `json:"minified_after_bytes,omitempty"`

	Breakdown []ChapterCount `json:"breakdown,omitempty"`
	Sizes     SizeSnapshot   `json:"sizes"`
}

// ChapterCount is one row of the per-chapter breakdown.
type ChapterCount struct {
	Chapter  string         `json:"chapter"`
	Blocks   int            `json:"blocks"`
	Sections []SectionCount `json:"sections"`
}

// SectionCount carries the block count and merged-document size of one
// section.
type SectionCount struct {
	Section string `json:"section"`
	Blocks  int    `json:"blocks"`
	Bytes   int64  `json:"bytes"`
}

// SizeSnapshot is a point-in-time aggregate of merged section sizes.
type SizeSnapshot struct {
	Count    int     `json:"count"`
	MinBytes int64   `json:"min_bytes"`
	MaxBytes int64   `json:"max_bytes"`
	AvgBytes float64 `json:"avg_bytes"`
	P50Bytes float64 `json:"p50_bytes"`
	P95Bytes float64 `json:"p95_bytes"`
}

// Collect builds a Report from the input blocks, the post-filter blocks and
// an optional grouping. Byte sizes are filled in by the caller once the
// encodings exist.
func Collect(in, kept []corpus.Block, excludePrefixes []string, g *group.Grouping) Report {
	empty, excluded := CountDropped(in, excludePrefixes)
	r := Report{
		InputBlocks:  len(in),
		KeptBlocks:   len(kept),
		DroppedEmpty: empty,
		DroppedHref:  excluded,
	}
	if g != nil {
		r.Breakdown = Breakdown(g)
		r.Chapters = len(r.Breakdown)
		for _, c := range r.Breakdown {
			r.Sections += len(c.Sections)
		}
		r.Sizes = DescribeSizes(SectionSizes(r.Breakdown))
	}
	return r
}

// CountDropped classifies the records the filters remove. A record that is
// both empty and href-excluded counts once, as empty, so the two counts plus
// the kept count always sum to the input count.
func CountDropped(blocks []corpus.Block, excludePrefixes []string) (empty, excluded int) {
	for _, b := range blocks {
		switch {
		case b.Content == "":
			empty++
		case filter.Excluded(b.Href, excludePrefixes):
			excluded++
		}
	}
	return empty, excluded
}

// Breakdown lists block counts and merged sizes per chapter and section, in
// the grouping's own order.
func Breakdown(g *group.Grouping) []ChapterCount {
	var out []ChapterCount
	idx := make(map[string]int)
	for _, k := range g.Keys() {
		entries := g.Entries(k)
		sc := SectionCount{
			Section: k.Section,
			Blocks:  len(entries),
			Bytes:   int64(len(group.MergeEntries(entries))),
		}
		i, seen := idx[k.Chapter]
		if !seen {
			i = len(out)
			idx[k.Chapter] = i
			out = append(out, ChapterCount{Chapter: k.Chapter})
		}
		out[i].Blocks += sc.Blocks
		out[i].Sections = append(out[i].Sections, sc)
	}
	return out
}

// SectionSizes flattens a breakdown into the raw merged-document sizes.
func SectionSizes(breakdown []ChapterCount) []int64 {
	var sizes []int64
	for _, c := range breakdown {
		for _, s := range c.Sections {
			sizes = append(sizes, s.Bytes)
		}
	}
	return sizes
}

// DescribeSizes summarizes a set of byte sizes.
func DescribeSizes(sizes []int64) SizeSnapshot {
	if len(sizes) == 0 {
		return SizeSnapshot{}
	}

	values := make([]int64, len(sizes))
	copy(values, sizes)
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	var sum int64
	for _, v := range values {
		sum += v
	}

	return SizeSnapshot{
		Count:    len(values),
		MinBytes: values[0],
		MaxBytes: values[len(values)-1],
		AvgBytes: float64(sum) / float64(len(values)),
		P50Bytes: percentile(values, 50),
		P95Bytes: percentile(values, 95),
	}
}

// Reduction reports the percentage saved going from before to after. A
// non-positive baseline yields 0 rather than a division error.
func Reduction(before, after int) float64 {
	if before <= 0 {
		return 0
	}
	return (1 - float64(after)/float64(before)) * 100
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
