// Package export renders a grouped corpus as a directory of markdown files,
// one per chapter, plus an index.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dgallion1/docpack/internal/group"
	"github.com/dgallion1/docpack/internal/output"
)

// IndexFile names the table-of-contents file written alongside the chapters.
const IndexFile = "index.md"

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
	dashRuns     = regexp.MustCompile(`-+`)
)

// Write renders every chapter into dir as NN-<slug>.md and finishes with an
// index linking them. It returns the number of files written.
func Write(dir string, chapters []group.MergedChapter) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", dir, err)
	}

	written := 0
	var index strings.Builder
	index.WriteString("# Index\n\n")

	for i, ch := range chapters {
		name := fmt.Sprintf("%02d-%s.md", i+1, Slugify(ch.Chapter))

		var b strings.Builder
		b.WriteString("# " + ch.Chapter + "\n")
		for _, sec := range ch.Sections {
			b.WriteString("\n## " + sec.Section + "\n\n")
			b.WriteString(sec.Content)
			b.WriteString("\n")
		}

		if err := output.WriteFile(filepath.Join(dir, name), []byte(b.String())); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		written++
		index.WriteString(fmt.Sprintf("- [%s](%s) (%d sections)\n", ch.Chapter, name, len(ch.Sections)))
	}

	if err := output.WriteFile(filepath.Join(dir, IndexFile), []byte(index.String())); err != nil {
		return written, fmt.Errorf("write %s: %w", IndexFile, err)
	}
	return written + 1, nil
}

// Slugify converts a chapter name to a filename-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 50 {
		s = s[:50]
	}
	if s == "" {
		s = "chapter"
	}
	return s
}
