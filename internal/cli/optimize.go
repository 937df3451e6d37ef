package cli

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/docpack/internal/corpus"
	"github.com/dgallion1/docpack/internal/filter"
	"github.com/dgallion1/docpack/internal/output"
	"github.com/dgallion1/docpack/internal/stats"
)

func init() {
	RootCmd.AddCommand(optimizeCmd)
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Reduce blocks to title and content, titles from breadcrumbs",
	Args:  cobra.NoArgs,
	RunE:  runOptimize,
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if err := optimizePreset.Validate(); err != nil {
		return err
	}

	doc, err := corpus.Load(corpus.InputFile)
	if err != nil {
		return err
	}

	kept := filter.Apply(doc.Blocks, optimizePreset.ExcludePrefixes)
	titled := make([]corpus.TitledBlock, 0, len(kept))
	for _, b := range kept {
		title := b.Breadcrumbs.String()
		if title == "" {
			// Re-runs on already-optimized output keep their titles.
			title = b.Title
		}
		titled = append(titled, corpus.TitledBlock{Title: title, Content: b.Content})
	}

	size, err := output.WritePretty(output.PrettyFile, doc.Envelope(titled))
	if err != nil {
		return err
	}
	log.Info("wrote optimized corpus", "path", output.PrettyFile, "blocks", len(titled))

	r := stats.Collect(doc.Blocks, kept, optimizePreset.ExcludePrefixes, nil)
	r.PrettyAfterBytes = size
	if base, err := output.Reindent(doc.Raw); err == nil {
		r.PrettyBeforeBytes = len(base)
	}
	printCounts(r)
	printBytes(r)
	return nil
}
