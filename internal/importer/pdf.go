package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. Each page becomes its own section since PDFs
// carry no reliable heading structure.
type PDFParser struct{}

func (p *PDFParser) Parse(r io.Reader, filename string) (*Node, error) {
	// The pdf library needs a ReadSeeker plus size, so spill to a temp file.
	tmp, err := os.CreateTemp("", "docpack-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	root := &Node{Title: docTitle(filename)}
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page that fails text extraction is skipped, not fatal.
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		root.Children = append(root.Children, &Node{
			Title: fmt.Sprintf("Page %d", i),
			Text:  text,
		})
	}
	return root, nil
}
