package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// InputFile is the corpus file every transform reads from the working directory.
const InputFile = "content.json"

// Separator joins breadcrumb segments into their canonical string form,
// e.g. "Docs > Svelte > Runes > $state".
const Separator = " > "

// ErrNoBlocks reports a parsed document without a blocks array.
var ErrNoBlocks = errors.New("content is missing a blocks array")

// Breadcrumbs is the canonical breadcrumb representation: an ordered list of
// path segments. Scraped corpora encode the field either as a string array or
// as a single pre-joined string; both decode to the same segment slice, so
// nothing downstream ever branches on the input shape. Any other JSON shape
// is tolerated and decodes to nil, which keeps the record out of hierarchical
// grouping without failing the whole document.
type Breadcrumbs []string

func (b *Breadcrumbs) UnmarshalJSON(data []byte) error {
	var segments []string
	if err := json.Unmarshal(data, &segments); err == nil {
		*b = segments
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		if joined == "" {
			*b = nil
			return nil
		}
		*b = strings.Split(joined, Separator)
		return nil
	}

	*b = nil
	return nil
}

// String returns the joined canonical form.
func (b Breadcrumbs) String() string {
	return strings.Join(b, Separator)
}

// Block is one flat record of the corpus. Title shows up when the corpus has
// already been through the title-rewrite transform once; it rides along so
// that transform stays idempotent.
type Block struct {
	Title       string      `json:"title,omitempty"`
	Content     string      `json:"content"`
	Href        string      `json:"href,omitempty"`
	Breadcrumbs Breadcrumbs `json:"breadcrumbs,omitempty"`
}

// TitledBlock is the reduced output record used by the flat optimize mode and
// by hierarchical block lists: a heading title plus the block's content.
type TitledBlock struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// Document is a parsed corpus file. Top-level fields other than "blocks" are
// preserved as raw JSON so flat outputs can carry them through untouched.
type Document struct {
	Blocks []Block
	Extra  map[string]json.RawMessage

	// Raw holds the bytes the document was decoded from, for size statistics.
	Raw []byte
}

// Decode parses a corpus document from raw JSON.
func Decode(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	blocksRaw, ok := top["blocks"]
	if !ok || bytes.Equal(bytes.TrimSpace(blocksRaw), []byte("null")) {
		return nil, ErrNoBlocks
	}

	var blocks []Block
	if err := json.Unmarshal(blocksRaw, &blocks); err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}
	delete(top, "blocks")

	return &Document{Blocks: blocks, Extra: top, Raw: data}, nil
}

// Load reads and decodes the corpus file at path. A missing file surfaces
// with fs.ErrNotExist in the chain so callers can report it distinctly.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Envelope rebuilds the document's top level around a replacement blocks
// value, preserving every other original top-level field.
func (d *Document) Envelope(blocks any) map[string]any {
	out := make(map[string]any, len(d.Extra)+1)
	for k, v := range d.Extra {
		out[k] = v
	}
	out["blocks"] = blocks
	return out
}
