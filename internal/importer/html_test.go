package importer

import (
	"strings"
	"testing"
)

func TestHTMLParser_TitleAndHeadings(t *testing.T) {
	input := `<html>
<head><title>Widget Guide</title><style>p{color:red}</style></head>
<body>
<nav><p>skip this nav</p></nav>
<h1>Widgets</h1>
<p>Widgets are <strong>great</strong>.</p>
<h2>Setup</h2>
<ul><li>plug it in</li><li>turn it on</li></ul>
<script>console.log("skip")</script>
</body>
</html>`

	p := &HTMLParser{}
	root, err := p.Parse(strings.NewReader(input), "widgets.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if root.Title != "Widget Guide" {
		t.Errorf("expected title from <title>, got %q", root.Title)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 h1 section, got %d", len(root.Children))
	}

	h1 := root.Children[0]
	if h1.Title != "Widgets" {
		t.Errorf("expected %q, got %q", "Widgets", h1.Title)
	}
	if !strings.Contains(h1.Text, "**great**") {
		t.Errorf("expected markdown emphasis in text, got %q", h1.Text)
	}
	if strings.Contains(h1.Text, "skip") {
		t.Errorf("nav or script content leaked: %q", h1.Text)
	}

	if len(h1.Children) != 1 {
		t.Fatalf("expected 1 h2 section, got %d", len(h1.Children))
	}
	setup := h1.Children[0]
	if setup.Title != "Setup" {
		t.Errorf("expected %q, got %q", "Setup", setup.Title)
	}
	if !strings.Contains(setup.Text, "plug it in") || !strings.Contains(setup.Text, "- ") {
		t.Errorf("expected markdown list, got %q", setup.Text)
	}
}

func TestHTMLParser_FallsBackToFilename(t *testing.T) {
	input := `<p>No title element here.</p>`
	p := &HTMLParser{}
	root, err := p.Parse(strings.NewReader(input), "plain.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Title != "plain" {
		t.Errorf("expected filename-derived title, got %q", root.Title)
	}
	if !strings.Contains(root.Text, "No title element here.") {
		t.Errorf("expected paragraph on root, got %q", root.Text)
	}
}
