package cli

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/docpack/internal/corpus"
	"github.com/dgallion1/docpack/internal/filter"
	"github.com/dgallion1/docpack/internal/group"
	"github.com/dgallion1/docpack/internal/output"
	"github.com/dgallion1/docpack/internal/stats"
)

func init() {
	RootCmd.AddCommand(discoverCmd)
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Regroup blocks by the chapter structure observed in the corpus",
	Long: `discover derives the chapter layout from the breadcrumbs themselves:
every record with at least three segments establishes its
(first two segments, third segment) pair as a valid bucket, then the
filtered records with at least four segments populate those buckets.
Sections keep their blocks separate instead of merging them.`,
	Args: cobra.NoArgs,
	RunE: runDiscover,
}

func runDiscover(cmd *cobra.Command, args []string) error {
	if err := discoverPreset.Validate(); err != nil {
		return err
	}

	doc, err := corpus.Load(corpus.InputFile)
	if err != nil {
		return err
	}

	kept := filter.Apply(doc.Blocks, discoverPreset.ExcludePrefixes)
	g := group.GroupDiscovered(doc.Blocks, kept)
	chapters := group.RenderBlocks(g)

	pair, err := output.WritePair(output.PrettyFile, output.MinifiedFile, chapters)
	if err != nil {
		return err
	}
	log.Info("wrote discovered grouping",
		"chapters", len(chapters),
		"pretty", output.PrettyFile,
		"minified", output.MinifiedFile)

	r := stats.Collect(doc.Blocks, kept, discoverPreset.ExcludePrefixes, g)
	r.PrettyAfterBytes = pair.PrettyBytes
	r.MinifiedAfterBytes = pair.MinifiedBytes
	if base, err := output.Reindent(doc.Raw); err == nil {
		r.PrettyBeforeBytes = len(base)
	}
	if base, err := output.Compact(doc.Raw); err == nil {
		r.MinifiedBeforeBytes = len(base)
	}
	printCounts(r)
	printBytes(r)
	printBreakdown(r)
	return nil
}
