package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docpack/internal/corpus"
	"github.com/dgallion1/docpack/internal/importer"
	"github.com/dgallion1/docpack/internal/output"
)

func init() {
	RootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <srcdir>",
	Short: "Build content.json from a directory of source documents",
	Long: `import walks a directory of markdown, HTML, text, CSV, PDF and DOCX
files and assembles them into a fresh content.json. Breadcrumbs come from
the relative path, the document title and the heading hierarchy; hrefs
point back at the source files. An existing content.json is never
overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(corpus.InputFile); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", corpus.InputFile)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	blocks, err := importer.New(log).Dir(args[0])
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return fmt.Errorf("no importable documents under %s", args[0])
	}

	size, err := output.WritePretty(corpus.InputFile, map[string]any{"blocks": blocks})
	if err != nil {
		return err
	}
	log.Info("wrote corpus", "path", corpus.InputFile, "blocks", len(blocks), "bytes", size)
	fmt.Printf("Imported %d blocks into %s\n", len(blocks), corpus.InputFile)
	return nil
}
