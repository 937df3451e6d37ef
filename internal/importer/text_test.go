package importer

import (
	"strings"
	"testing"
)

func TestTextParser_Paragraphs(t *testing.T) {
	input := "First paragraph\nstill first.\n\nSecond paragraph.\n\n\nThird.\n"
	p := &TextParser{}
	root, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if root.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", root.Title)
	}
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(root.Children))
	}
	if root.Children[0].Text != "First paragraph\nstill first." {
		t.Errorf("unexpected first paragraph: %q", root.Children[0].Text)
	}
	if root.Children[2].Text != "Third." {
		t.Errorf("unexpected third paragraph: %q", root.Children[2].Text)
	}
}

func TestTextParser_Empty(t *testing.T) {
	p := &TextParser{}
	root, err := p.Parse(strings.NewReader("   \n\n"), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 0 {
		t.Errorf("expected no paragraphs, got %d", len(root.Children))
	}
}
