package importer

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/dgallion1/docpack/internal/corpus"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestForFileDispatch(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"doc.md", false},
		{"doc.markdown", false},
		{"doc.txt", false},
		{"doc.csv", false},
		{"doc.html", false},
		{"doc.HTM", false},
		{"doc.pdf", false},
		{"doc.docx", false},
		{"doc.exe", true},
		{"doc", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFile(%q): err=%v, wantErr=%v", tt.filename, err, tt.wantErr)
		}
		if IsSupported(tt.filename) == tt.wantErr {
			t.Errorf("IsSupported(%q) disagrees with ForFile", tt.filename)
		}
	}
}

func TestFlattenBreadcrumbTrail(t *testing.T) {
	root := &Node{
		Title: "Guide",
		Text:  "Preamble.",
		Children: []*Node{
			{Title: "Install", Text: "install body"},
			{Title: "Usage", Text: "usage body", Children: []*Node{
				{Title: "Advanced", Text: "advanced body"},
			}},
		},
	}

	blocks := Flatten(root, corpus.Breadcrumbs{"docs"}, "/docs/guide")
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(blocks))
	}

	want := []corpus.Breadcrumbs{
		{"docs", "Guide"},
		{"docs", "Guide", "Install"},
		{"docs", "Guide", "Usage"},
		{"docs", "Guide", "Usage", "Advanced"},
	}
	for i, w := range want {
		if !slices.Equal(blocks[i].Breadcrumbs, w) {
			t.Errorf("blocks[%d]: expected breadcrumbs %v, got %v", i, w, blocks[i].Breadcrumbs)
		}
		if blocks[i].Href != "/docs/guide" {
			t.Errorf("blocks[%d]: expected href %q, got %q", i, "/docs/guide", blocks[i].Href)
		}
	}

	// Sibling paths must not bleed into each other.
	if slices.Contains(blocks[2].Breadcrumbs, "Install") {
		t.Errorf("sibling title leaked into breadcrumbs: %v", blocks[2].Breadcrumbs)
	}
}

func TestFlattenSkipsTextlessNodes(t *testing.T) {
	root := &Node{
		Title: "Doc",
		Children: []*Node{
			{Title: "Empty container", Children: []*Node{
				{Title: "Leaf", Text: "leaf body"},
			}},
		},
	}
	blocks := Flatten(root, nil, "/doc")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	want := corpus.Breadcrumbs{"Doc", "Empty container", "Leaf"}
	if !slices.Equal(blocks[0].Breadcrumbs, want) {
		t.Errorf("expected breadcrumbs %v, got %v", want, blocks[0].Breadcrumbs)
	}
}

func TestHrefForAndDirSegments(t *testing.T) {
	if got := hrefFor(filepath.Join("svelte", "runes.md")); got != "/svelte/runes" {
		t.Errorf("expected %q, got %q", "/svelte/runes", got)
	}
	if got := hrefFor("index.html"); got != "/index" {
		t.Errorf("expected %q, got %q", "/index", got)
	}

	segs := dirSegments(filepath.Join("docs", "svelte", "runes.md"))
	if !slices.Equal(segs, corpus.Breadcrumbs{"docs", "svelte"}) {
		t.Errorf("unexpected segments: %v", segs)
	}
	if segs := dirSegments("top.md"); segs != nil {
		t.Errorf("expected nil segments for top-level file, got %v", segs)
	}
}

func TestImporterDir(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "svelte", "runes.md"),
		"## $state\n\nReactive state.\n")
	mustWrite(t, filepath.Join(dir, "notes.txt"),
		"Plain paragraph.\n")
	mustWrite(t, filepath.Join(dir, "ignore.bin"),
		"binary junk")
	mustWrite(t, filepath.Join(dir, ".hidden", "secret.md"),
		"# Nope\n\ntext\n")

	im := New(discardLogger())
	blocks, err := im.Dir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}

	// Lexical walk order: notes.txt before svelte/runes.md.
	if blocks[0].Href != "/notes" {
		t.Errorf("expected first block from notes.txt, got href %q", blocks[0].Href)
	}
	if !strings.Contains(blocks[0].Content, "Plain paragraph.") {
		t.Errorf("unexpected content: %q", blocks[0].Content)
	}

	md := blocks[1]
	if md.Href != "/svelte/runes" {
		t.Errorf("expected href %q, got %q", "/svelte/runes", md.Href)
	}
	want := corpus.Breadcrumbs{"svelte", "runes", "$state"}
	if !slices.Equal(md.Breadcrumbs, want) {
		t.Errorf("expected breadcrumbs %v, got %v", want, md.Breadcrumbs)
	}
}

func TestImporterDirMissing(t *testing.T) {
	im := New(discardLogger())
	if _, err := im.Dir(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
