package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docpack/internal/corpus"
	"github.com/dgallion1/docpack/internal/export"
	"github.com/dgallion1/docpack/internal/filter"
	"github.com/dgallion1/docpack/internal/group"
)

func init() {
	RootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [outdir]",
	Short: "Write merged chapters as a markdown file tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	outdir := "docs"
	if len(args) == 1 {
		outdir = args[0]
	}
	if err := exportPreset.Validate(); err != nil {
		return err
	}

	doc, err := corpus.Load(corpus.InputFile)
	if err != nil {
		return err
	}

	kept := filter.Apply(doc.Blocks, exportPreset.ExcludePrefixes)
	chapters := group.RenderMerged(group.GroupFixed(kept, exportPreset.Schema))

	n, err := export.Write(outdir, chapters)
	if err != nil {
		return err
	}
	log.Info("exported markdown tree", "dir", outdir, "files", n)
	fmt.Printf("Wrote %d files to %s\n", n, outdir)
	return nil
}
