package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dgallion1/docpack/internal/corpus"
	"github.com/dgallion1/docpack/internal/filter"
	"github.com/dgallion1/docpack/internal/group"
	"github.com/dgallion1/docpack/internal/outline"
)

func init() {
	RootCmd.AddCommand(outlineCmd)
}

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Report corpus structure with word and token estimates",
	Long: `outline groups the corpus by its observed breadcrumb structure and
prints per-section block, word, heading and estimated token counts. It
reports on everything present in the corpus, so only empty blocks are
set aside. No files are written.`,
	Args: cobra.NoArgs,
	RunE: runOutline,
}

func runOutline(cmd *cobra.Command, args []string) error {
	doc, err := corpus.Load(corpus.InputFile)
	if err != nil {
		return err
	}

	populated := filter.Apply(doc.Blocks, nil)
	g := group.GroupDiscovered(doc.Blocks, populated)
	o := outline.Build(g)

	color.New(color.Bold, color.FgHiCyan).Println("🧭 Outline")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Chapter", "Section", "Blocks", "Words", "Tokens", "Headings"})
	for _, c := range o.Chapters {
		for i, s := range c.Sections {
			name := c.Chapter
			if i > 0 {
				name = ""
			}
			table.Append([]string{
				name, s.Section,
				strconv.Itoa(s.Blocks),
				strconv.Itoa(s.Words),
				strconv.Itoa(s.Tokens),
				strconv.Itoa(s.Headings),
			})
		}
	}
	table.Render()
	fmt.Println()
	fmt.Printf("Total: %d blocks, %d words, ~%d tokens\n", o.Blocks, o.Words, o.Tokens)
	return nil
}
