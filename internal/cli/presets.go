package cli

import (
	"fmt"
	"strings"

	"github.com/dgallion1/docpack/internal/group"
)

// Preset is the compiled-in configuration of one transform mode: which href
// prefixes to drop and, for fixed-schema modes, the chapter layout. Presets
// replace flags and environment variables entirely.
type Preset struct {
	ExcludePrefixes []string
	Schema          group.Schema
}

// Validate rejects presets that could not have come from a working script:
// blank exclusion prefixes or a schema with ambiguous chapter names.
func (p Preset) Validate() error {
	for i, prefix := range p.ExcludePrefixes {
		if strings.TrimSpace(prefix) == "" {
			return fmt.Errorf("exclude prefix %d is blank", i)
		}
	}
	if len(p.Schema.Chapters) > 0 {
		if err := p.Schema.Validate(); err != nil {
			return fmt.Errorf("chapter schema: %w", err)
		}
	}
	return nil
}

// The presets mirror the Svelte documentation corpus these transforms grew up
// on. Each subcommand picks the set its original script shipped with.
var (
	// prunePreset keeps the corpus flat and only drops dead weight.
	prunePreset = Preset{}

	// optimizePreset also drops interactive pages that never belong in a
	// reading corpus.
	optimizePreset = Preset{
		ExcludePrefixes: []string{
			"/tutorial",
			"/playground",
			"/examples",
		},
	}

	// groupPreset is the fixed chapter layout of the main documentation.
	groupPreset = Preset{
		ExcludePrefixes: []string{
			"/tutorial",
			"/playground",
			"/faq",
		},
		Schema: group.Schema{Chapters: []group.ChapterSchema{
			{
				Name: "Docs > Svelte",
				Sections: []string{
					"Introduction",
					"Runes",
					"Template syntax",
					"Styling",
					"Special elements",
					"Runtime",
					"Misc",
					"Reference",
				},
			},
			{
				Name: "Docs > SvelteKit",
				Sections: []string{
					"Getting started",
					"Core concepts",
					"Build and deploy",
					"Advanced",
					"Best practices",
					"Appendix",
				},
			},
		}},
	}

	// discoverPreset drops legacy and migration pages before regrouping by
	// the observed breadcrumb structure.
	discoverPreset = Preset{
		ExcludePrefixes: []string{
			"/docs/v4",
			"/tutorial",
			"/migrating",
		},
	}

	// exportPreset reuses the fixed layout for the markdown tree.
	exportPreset = groupPreset
)
