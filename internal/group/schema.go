package group

import (
	"fmt"
	"strings"

	"github.com/dgallion1/docpack/internal/corpus"
)

// Schema is a predeclared chapter layout: an ordered list of chapter names,
// each with an ordered list of section names. Names may span multiple
// breadcrumb segments (e.g. "Docs > Svelte").
type Schema struct {
	Chapters []ChapterSchema
}

// ChapterSchema declares one chapter and its valid sections.
type ChapterSchema struct {
	Name     string
	Sections []string
}

// Validate rejects schemas where matching could be ambiguous: chapters must
// be mutually non-prefixing segment-wise, and so must the sections within a
// chapter. "Docs > Svelte" and "Docs > SvelteKit" are fine; "Docs" alongside
// "Docs > Svelte" is not, because the shorter one would shadow the longer
// depending on declaration order.
func (s Schema) Validate() error {
	if len(s.Chapters) == 0 {
		return fmt.Errorf("schema has no chapters")
	}
	for i, ch := range s.Chapters {
		if ch.Name == "" {
			return fmt.Errorf("chapter %d has an empty name", i)
		}
		if len(ch.Sections) == 0 {
			return fmt.Errorf("chapter %q has no sections", ch.Name)
		}
		for j, sec := range ch.Sections {
			if sec == "" {
				return fmt.Errorf("chapter %q: section %d has an empty name", ch.Name, j)
			}
		}
		for _, other := range s.Chapters[i+1:] {
			a, b := segmentsOf(ch.Name), segmentsOf(other.Name)
			if isSegmentPrefix(a, b) || isSegmentPrefix(b, a) {
				return fmt.Errorf("ambiguous chapters: %q and %q overlap segment-wise", ch.Name, other.Name)
			}
		}
		for j, sec := range ch.Sections {
			for _, other := range ch.Sections[j+1:] {
				a, b := segmentsOf(sec), segmentsOf(other)
				if isSegmentPrefix(a, b) || isSegmentPrefix(b, a) {
					return fmt.Errorf("chapter %q: ambiguous sections %q and %q", ch.Name, sec, other)
				}
			}
		}
	}
	return nil
}

// Match finds the (chapter, section) bucket for a breadcrumb path using
// exact segment-wise comparison, never string prefixes. The residual
// segments after chapter and section become the entry title; an empty
// residue falls back to the section name. With a validated schema at most
// one chapter can match, so declaration order never decides.
func (s Schema) Match(bc corpus.Breadcrumbs) (chapter, section, title string, ok bool) {
	for _, ch := range s.Chapters {
		chSegs := segmentsOf(ch.Name)
		if !isSegmentPrefix(chSegs, bc) {
			continue
		}
		rest := bc[len(chSegs):]
		for _, sec := range ch.Sections {
			secSegs := segmentsOf(sec)
			if !isSegmentPrefix(secSegs, rest) {
				continue
			}
			tail := rest[len(secSegs):]
			title = strings.Join(tail, corpus.Separator)
			if title == "" {
				title = sec
			}
			return ch.Name, sec, title, true
		}
		return "", "", "", false
	}
	return "", "", "", false
}

func segmentsOf(name string) []string {
	return strings.Split(name, corpus.Separator)
}

// isSegmentPrefix reports whether prefix matches the leading segments of
// path, comparing whole segments for equality.
func isSegmentPrefix(prefix, path []string) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}
	return true
}
