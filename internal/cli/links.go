package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docpack/internal/corpus"
	"github.com/dgallion1/docpack/internal/links"
)

func init() {
	RootCmd.AddCommand(linksCmd)
}

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List every block's href, numbered",
	Args:  cobra.NoArgs,
	RunE:  runLinks,
}

func runLinks(cmd *cobra.Command, args []string) error {
	doc, err := corpus.Load(corpus.InputFile)
	if err != nil {
		return err
	}

	ls := links.Extract(doc.Blocks)
	if err := links.Write(os.Stdout, ls); err != nil {
		return err
	}
	log.Info("listed links", "count", len(ls), "blocks", len(doc.Blocks))
	return nil
}
