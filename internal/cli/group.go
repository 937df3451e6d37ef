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
	RootCmd.AddCommand(groupCmd)
}

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Regroup blocks into the fixed chapter layout with merged sections",
	Args:  cobra.NoArgs,
	RunE:  runGroup,
}

func runGroup(cmd *cobra.Command, args []string) error {
	if err := groupPreset.Validate(); err != nil {
		return err
	}

	doc, err := corpus.Load(corpus.InputFile)
	if err != nil {
		return err
	}

	kept := filter.Apply(doc.Blocks, groupPreset.ExcludePrefixes)
	g := group.GroupFixed(kept, groupPreset.Schema)
	chapters := group.RenderMerged(g)

	pair, err := output.WritePair(output.PrettyFile, output.MinifiedFile, chapters)
	if err != nil {
		return err
	}
	log.Info("wrote grouped corpus",
		"chapters", len(chapters),
		"pretty", output.PrettyFile,
		"minified", output.MinifiedFile)

	r := stats.Collect(doc.Blocks, kept, groupPreset.ExcludePrefixes, g)
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
