package importer

import (
	"bufio"
	"io"
	"strings"
)

// TextParser handles plain text files. Blank lines delimit paragraphs and
// each paragraph becomes its own anonymous section.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*Node, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	root := &Node{Title: docTitle(filename)}
	for _, para := range paragraphs {
		root.Children = append(root.Children, &Node{Text: para})
	}
	return root, nil
}
