package cli

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/docpack/internal/corpus"
	"github.com/dgallion1/docpack/internal/filter"
	"github.com/dgallion1/docpack/internal/output"
	"github.com/dgallion1/docpack/internal/stats"
)

func init() {
	RootCmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop empty blocks, keep the corpus flat and otherwise untouched",
	Args:  cobra.NoArgs,
	RunE:  runPrune,
}

func runPrune(cmd *cobra.Command, args []string) error {
	if err := prunePreset.Validate(); err != nil {
		return err
	}

	doc, err := corpus.Load(corpus.InputFile)
	if err != nil {
		return err
	}

	kept := filter.Apply(doc.Blocks, prunePreset.ExcludePrefixes)
	size, err := output.WritePretty(output.PrettyFile, doc.Envelope(kept))
	if err != nil {
		return err
	}
	log.Info("wrote pruned corpus", "path", output.PrettyFile, "blocks", len(kept))

	r := stats.Collect(doc.Blocks, kept, prunePreset.ExcludePrefixes, nil)
	r.PrettyAfterBytes = size
	if base, err := output.Reindent(doc.Raw); err == nil {
		r.PrettyBeforeBytes = len(base)
	}
	printCounts(r)
	printBytes(r)
	return nil
}
