package stats

import (
	"testing"

	"github.com/dgallion1/docpack/internal/corpus"
	"github.com/dgallion1/docpack/internal/filter"
	"github.com/dgallion1/docpack/internal/group"
)

func TestDescribeSizesPercentiles(t *testing.T) {
	snap := DescribeSizes([]int64{100, 200, 300, 400, 500})
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinBytes != 100 {
		t.Fatalf("expected min=100, got %d", snap.MinBytes)
	}
	if snap.MaxBytes != 500 {
		t.Fatalf("expected max=500, got %d", snap.MaxBytes)
	}
	if snap.AvgBytes != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgBytes)
	}
	if snap.P50Bytes != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Bytes)
	}
	if snap.P95Bytes != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Bytes)
	}
}

func TestDescribeSizesEmpty(t *testing.T) {
	snap := DescribeSizes(nil)
	if snap.Count != 0 || snap.MaxBytes != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestDescribeSizesDoesNotReorderInput(t *testing.T) {
	sizes := []int64{500, 100, 300}
	DescribeSizes(sizes)
	if sizes[0] != 500 || sizes[1] != 100 || sizes[2] != 300 {
		t.Fatalf("input slice was reordered: %v", sizes)
	}
}

func TestReduction(t *testing.T) {
	tests := []struct {
		name   string
		before int
		after  int
		want   float64
	}{
		{"forty percent", 1000, 600, 40},
		{"no change", 500, 500, 0},
		{"zero baseline", 0, 100, 0},
		{"growth is negative", 100, 150, -50},
	}
	for _, tt := range tests {
		if got := Reduction(tt.before, tt.after); got != tt.want {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.want, got)
		}
	}
}

func TestCountDroppedClassification(t *testing.T) {
	blocks := []corpus.Block{
		{Content: "kept"},
		{Content: ""},
		{Content: "gone", Href: "/tutorial/a"},
		{Content: "", Href: "/tutorial/b"},
		{Content: "kept too", Href: "/docs/x"},
	}
	empty, excluded := CountDropped(blocks, []string{"/tutorial"})
	if empty != 2 {
		t.Errorf("expected 2 empty, got %d", empty)
	}
	if excluded != 1 {
		t.Errorf("expected 1 excluded, got %d", excluded)
	}

	kept := filter.Apply(blocks, []string{"/tutorial"})
	if len(kept)+empty+excluded != len(blocks) {
		t.Errorf("drop counts do not account for every record: kept=%d empty=%d excluded=%d",
			len(kept), empty, excluded)
	}
}

func statsFixture() ([]corpus.Block, *group.Grouping) {
	blocks := []corpus.Block{
		{Content: "state body", Breadcrumbs: corpus.Breadcrumbs{"Docs", "Svelte", "Runes", "$state"}},
		{Content: "derived body", Breadcrumbs: corpus.Breadcrumbs{"Docs", "Svelte", "Runes", "$derived"}},
		{Content: "routing body", Breadcrumbs: corpus.Breadcrumbs{"Docs", "SvelteKit", "Routing", "+page"}},
	}
	return blocks, group.GroupDiscovered(blocks, blocks)
}

func TestCollectWithGrouping(t *testing.T) {
	blocks, g := statsFixture()
	in := append([]corpus.Block{{Content: ""}}, blocks...)

	r := Collect(in, blocks, nil, g)
	if r.InputBlocks != 4 || r.KeptBlocks != 3 {
		t.Fatalf("unexpected counts: %+v", r)
	}
	if r.DroppedEmpty != 1 || r.DroppedHref != 0 {
		t.Fatalf("unexpected drop counts: %+v", r)
	}
	if r.Chapters != 2 {
		t.Errorf("expected 2 chapters, got %d", r.Chapters)
	}
	if r.Sections != 2 {
		t.Errorf("expected 2 sections, got %d", r.Sections)
	}
	if r.Sizes.Count != 2 {
		t.Errorf("expected 2 size samples, got %d", r.Sizes.Count)
	}
}

func TestBreakdownBytesMatchMergedDocuments(t *testing.T) {
	_, g := statsFixture()
	breakdown := Breakdown(g)
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(breakdown))
	}

	svelte := breakdown[0]
	if svelte.Chapter != "Docs > Svelte" {
		t.Fatalf("unexpected chapter order: %q", svelte.Chapter)
	}
	if svelte.Blocks != 2 {
		t.Errorf("expected 2 blocks in Svelte chapter, got %d", svelte.Blocks)
	}
	runes := svelte.Sections[0]
	wantDoc := "### $state\n\nstate body\n\n### $derived\n\nderived body"
	if runes.Bytes != int64(len(wantDoc)) {
		t.Errorf("expected %d bytes, got %d", len(wantDoc), runes.Bytes)
	}
}
