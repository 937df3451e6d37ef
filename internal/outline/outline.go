// Package outline summarizes a grouped corpus: block, word, heading and
// estimated token counts per chapter and section. The numbers size merged
// section documents for model-context budgeting before anything is fed
// downstream.
package outline

import (
	"strings"

	"github.com/dgallion1/docpack/internal/group"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// SectionOutline summarizes one merged section document.
type SectionOutline struct {
	Section  string `json:"section"`
	Blocks   int    `json:"blocks"`
	Words    int    `json:"words"`
	Tokens   int    `json:"tokens"`
	Headings int    `json:"headings"`
}

// ChapterOutline aggregates its sections.
type ChapterOutline struct {
	Chapter  string           `json:"chapter"`
	Blocks   int              `json:"blocks"`
	Words    int              `json:"words"`
	Tokens   int              `json:"tokens"`
	Sections []SectionOutline `json:"sections"`
}

// Outline is the whole-corpus summary.
type Outline struct {
	Blocks   int              `json:"blocks"`
	Words    int              `json:"words"`
	Tokens   int              `json:"tokens"`
	Chapters []ChapterOutline `json:"chapters"`
}

// Build computes the outline for a grouping, chapters in the grouping's own
// order.
func Build(g *group.Grouping) Outline {
	var o Outline
	idx := make(map[string]int)
	for _, k := range g.Keys() {
		entries := g.Entries(k)
		doc := group.MergeEntries(entries)
		so := SectionOutline{
			Section:  k.Section,
			Blocks:   len(entries),
			Words:    len(strings.Fields(doc)),
			Tokens:   EstimateTokens(doc),
			Headings: CountHeadings(doc),
		}

		i, seen := idx[k.Chapter]
		if !seen {
			i = len(o.Chapters)
			idx[k.Chapter] = i
			o.Chapters = append(o.Chapters, ChapterOutline{Chapter: k.Chapter})
		}
		c := &o.Chapters[i]
		c.Blocks += so.Blocks
		c.Words += so.Words
		c.Tokens += so.Tokens
		c.Sections = append(c.Sections, so)

		o.Blocks += so.Blocks
		o.Words += so.Words
		o.Tokens += so.Tokens
	}
	return o
}

// CountHeadings parses doc as markdown and counts heading nodes at any depth.
func CountHeadings(doc string) int {
	src := []byte(doc)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	count := 0
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if _, ok := n.(*ast.Heading); ok {
				count++
			}
		}
		return ast.WalkContinue, nil
	})
	return count
}
