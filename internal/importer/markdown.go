package importer

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles markdown files using goldmark. Content between
// headings is kept as the raw source slice rather than extracted text, so
// code fences, lists and inline markup survive the trip into the corpus.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	root := &Node{Title: docTitle(filename)}

	type stackEntry struct {
		node  *Node
		level int
	}
	stack := []stackEntry{{node: root, level: 0}}
	cursor := 0

	// flush assigns the raw source between the previous heading and upto to
	// the node on top of the stack.
	flush := func(upto int) {
		if upto > len(src) {
			upto = len(src)
		}
		if upto <= cursor {
			return
		}
		t := strings.TrimSpace(string(src[cursor:upto]))
		if t == "" {
			return
		}
		top := stack[len(stack)-1].node
		if top.Text != "" {
			top.Text += "\n\n" + t
		} else {
			top.Text = t
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		lines := h.Lines()
		if lines.Len() == 0 {
			continue
		}

		// Heading line segments cover the text only, not the markers, so
		// widen to full line boundaries before slicing around them.
		headStart := lineStartBefore(src, lines.At(0).Start)
		flush(headStart)
		cursor = lineEndAfter(src, lines.At(lines.Len()-1).Stop)
		if !isATXLine(src[headStart:]) {
			// Setext heading: the underline sits on its own line.
			cursor = lineEndAfter(src, cursor)
		}

		newNode := &Node{Title: string(h.Text(src))}

		// Pop until the parent has a strictly lower level.
		for len(stack) > 1 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, newNode)
		stack = append(stack, stackEntry{node: newNode, level: h.Level})
	}
	flush(len(src))

	return root, nil
}

func lineStartBefore(src []byte, off int) int {
	if off > len(src) {
		off = len(src)
	}
	return bytes.LastIndexByte(src[:off], '\n') + 1
}

func lineEndAfter(src []byte, off int) int {
	if off >= len(src) {
		return len(src)
	}
	i := bytes.IndexByte(src[off:], '\n')
	if i < 0 {
		return len(src)
	}
	return off + i + 1
}

func isATXLine(line []byte) bool {
	trimmed := bytes.TrimLeft(line, " ")
	return len(trimmed) > 0 && trimmed[0] == '#'
}
