// Package importer builds a block corpus from a directory of source
// documents. Each file is parsed into a section tree keyed by its headings,
// then flattened into blocks whose breadcrumbs combine the file's directory
// path, its title and the heading trail.
package importer

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docpack/internal/corpus"
)

// Parser converts one source document into a section tree.
type Parser interface {
	Parse(r io.Reader, filename string) (*Node, error)
}

// SupportedExtensions lists the file types the importer can ingest.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the parser for a filename.
func ForFile(filename string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupported checks whether a filename has an ingestible extension.
func IsSupported(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Importer turns source document trees into corpus blocks.
type Importer struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Importer {
	return &Importer{log: log}
}

// Dir walks srcdir in lexical order and imports every supported file. Files
// that fail to parse are logged and skipped; hidden directories are not
// descended into.
func (im *Importer) Dir(srcdir string) ([]corpus.Block, error) {
	var blocks []corpus.Block
	err := filepath.WalkDir(srcdir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != srcdir {
				return fs.SkipDir
			}
			return nil
		}
		if !IsSupported(path) {
			return nil
		}

		rel, err := filepath.Rel(srcdir, path)
		if err != nil {
			return err
		}
		fileBlocks, err := im.File(path, rel)
		if err != nil {
			im.log.Warn("skipping unparsable file", "path", rel, "error", err)
			return nil
		}
		blocks = append(blocks, fileBlocks...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", srcdir, err)
	}
	return blocks, nil
}

// File imports a single document. rel is the path relative to the import
// root; it determines both the leading breadcrumb segments and the href.
func (im *Importer) File(path, rel string) ([]corpus.Block, error) {
	p, err := ForFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	node, err := p.Parse(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	blocks := Flatten(node, dirSegments(rel), hrefFor(rel))
	im.log.Debug("imported file", "path", rel, "blocks", len(blocks))
	return blocks, nil
}

func dirSegments(rel string) corpus.Breadcrumbs {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." || dir == "" {
		return nil
	}
	return corpus.Breadcrumbs(strings.Split(dir, "/"))
}

func hrefFor(rel string) string {
	p := filepath.ToSlash(rel)
	p = strings.TrimSuffix(p, filepath.Ext(p))
	return "/" + p
}

// docTitle derives a document title from its filename.
func docTitle(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
