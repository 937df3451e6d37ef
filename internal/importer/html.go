package importer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Heading tags shape the section tree and the
// elements between them are converted to markdown, so the corpus reads the
// same regardless of source format.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())

	root := &Node{Title: docTitle(filename)}
	if el := findElement(doc, "title"); el != nil {
		if title := textContent(el); title != "" {
			root.Title = title
		}
	}

	type stackEntry struct {
		node  *Node
		level int
	}
	stack := []stackEntry{{node: root, level: 0}}
	var pending []string

	flush := func() {
		t := strings.TrimSpace(strings.Join(pending, "\n\n"))
		if t != "" {
			top := stack[len(stack)-1].node
			if top.Text != "" {
				top.Text += "\n\n" + t
			} else {
				top.Text = t
			}
		}
		pending = pending[:0]
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				flush()
				newNode := &Node{Title: textContent(n)}
				for len(stack) > 1 && stack[len(stack)-1].level >= level {
					stack = stack[:len(stack)-1]
				}
				parent := stack[len(stack)-1].node
				parent.Children = append(parent.Children, newNode)
				stack = append(stack, stackEntry{node: newNode, level: level})
				return // Heading text already extracted, skip children.
			}

			switch n.Data {
			case "head", "script", "style", "nav", "footer", "header":
				return
			case "p", "ul", "ol", "pre", "table", "blockquote", "dl":
				if t := toMarkdown(conv, n); t != "" {
					pending = append(pending, t)
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findElement(doc, "body"); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	flush()

	return root, nil
}

// toMarkdown renders one element back to HTML and converts that fragment.
func toMarkdown(conv *md.Converter, n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	out, err := conv.ConvertString(buf.String())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

// findElement returns the first element with the given tag name, depth-first.
func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}
