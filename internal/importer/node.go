package importer

import "github.com/dgallion1/docpack/internal/corpus"

// Node is one section of a parsed source document. Title is the heading text
// (empty for anonymous content), Text the content directly under it, Children
// the subsections.
type Node struct {
	Title    string
	Text     string
	Children []*Node
}

// Flatten walks the section tree depth-first and emits one block per node
// that carries text. Heading titles accumulate into the breadcrumb path on
// top of the base segments; every block points back at its source document
// through href.
func Flatten(root *Node, base corpus.Breadcrumbs, href string) []corpus.Block {
	var blocks []corpus.Block

	var walk func(n *Node, trail corpus.Breadcrumbs)
	walk = func(n *Node, trail corpus.Breadcrumbs) {
		// Fresh slice per node so sibling paths never share a backing array.
		var bc corpus.Breadcrumbs
		bc = append(bc, trail...)
		if n.Title != "" {
			bc = append(bc, n.Title)
		}

		if n.Text != "" {
			blocks = append(blocks, corpus.Block{
				Content:     n.Text,
				Href:        href,
				Breadcrumbs: bc,
			})
		}
		for _, c := range n.Children {
			walk(c, bc)
		}
	}
	walk(root, base)
	return blocks
}
