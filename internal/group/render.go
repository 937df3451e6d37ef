package group

import (
	"strings"

	"github.com/dgallion1/docpack/internal/corpus"
)

// MergedSection carries one section's blocks merged into a single markdown
// document.
type MergedSection struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

// MergedChapter is one chapter of merged sections.
type MergedChapter struct {
	Chapter  string          `json:"chapter"`
	Sections []MergedSection `json:"sections"`
}

// BlockSection carries one section's blocks as an ordered title/content list.
type BlockSection struct {
	Section string               `json:"section"`
	Blocks  []corpus.TitledBlock `json:"blocks"`
}

// BlockChapter is one chapter of block-list sections.
type BlockChapter struct {
	Chapter  string         `json:"chapter"`
	Sections []BlockSection `json:"sections"`
}

// MergeEntries renders a section's entries into one markdown document: each
// entry becomes a "### title" heading, a blank line, and its content; entries
// are joined by a blank line; the result is trimmed.
func MergeEntries(entries []Entry) string {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("### ")
		sb.WriteString(e.Title)
		sb.WriteString("\n\n")
		sb.WriteString(e.Content)
	}
	return strings.TrimSpace(sb.String())
}

// RenderMerged turns a grouping into the chapter tree with one merged
// document per section. Empty sections never reach the grouping, so every
// rendered chapter has at least one section. The result is never nil; an
// empty grouping still encodes as a JSON array.
func RenderMerged(g *Grouping) []MergedChapter {
	out := []MergedChapter{}
	idx := make(map[string]int)
	for _, k := range g.Keys() {
		i, seen := idx[k.Chapter]
		if !seen {
			i = len(out)
			idx[k.Chapter] = i
			out = append(out, MergedChapter{Chapter: k.Chapter})
		}
		out[i].Sections = append(out[i].Sections, MergedSection{
			Section: k.Section,
			Content: MergeEntries(g.Entries(k)),
		})
	}
	return out
}

// RenderBlocks turns a grouping into the chapter tree with per-block
// title/content lists. Like RenderMerged, it never returns nil.
func RenderBlocks(g *Grouping) []BlockChapter {
	out := []BlockChapter{}
	idx := make(map[string]int)
	for _, k := range g.Keys() {
		i, seen := idx[k.Chapter]
		if !seen {
			i = len(out)
			idx[k.Chapter] = i
			out = append(out, BlockChapter{Chapter: k.Chapter})
		}
		entries := g.Entries(k)
		blocks := make([]corpus.TitledBlock, 0, len(entries))
		for _, e := range entries {
			blocks = append(blocks, corpus.TitledBlock{Title: e.Title, Content: e.Content})
		}
		out[i].Sections = append(out[i].Sections, BlockSection{Section: k.Section, Blocks: blocks})
	}
	return out
}
