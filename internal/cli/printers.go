package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/dgallion1/docpack/internal/stats"
)

// printCounts renders the before/after block numbers common to every mode.
func printCounts(r stats.Report) {
	color.New(color.Bold, color.FgHiCyan).Println("📦 Blocks")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.Append([]string{"Input", strconv.Itoa(r.InputBlocks)})
	table.Append([]string{"Kept", strconv.Itoa(r.KeptBlocks)})
	table.Append([]string{"Dropped empty", strconv.Itoa(r.DroppedEmpty)})
	table.Append([]string{"Dropped by href", strconv.Itoa(r.DroppedHref)})
	table.Render()
	fmt.Println()
}

// printBytes renders whichever per-encoding reductions the mode produced.
func printBytes(r stats.Report) {
	if r.PrettyBeforeBytes == 0 && r.MinifiedBeforeBytes == 0 {
		return
	}
	color.New(color.Bold, color.FgHiCyan).Println("💾 Bytes")
	if r.PrettyBeforeBytes > 0 {
		fmt.Printf("Pretty    %s → %s (%.1f%% smaller)\n",
			humanBytes(r.PrettyBeforeBytes), humanBytes(r.PrettyAfterBytes),
			stats.Reduction(r.PrettyBeforeBytes, r.PrettyAfterBytes))
	}
	if r.MinifiedBeforeBytes > 0 {
		fmt.Printf("Minified  %s → %s (%.1f%% smaller)\n",
			humanBytes(r.MinifiedBeforeBytes), humanBytes(r.MinifiedAfterBytes),
			stats.Reduction(r.MinifiedBeforeBytes, r.MinifiedAfterBytes))
	}
	fmt.Println()
}

// printBreakdown renders the chapter/section table for grouping modes.
func printBreakdown(r stats.Report) {
	if len(r.Breakdown) == 0 {
		return
	}
	color.New(color.Bold, color.FgHiCyan).Println("🗂  Chapters")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Chapter", "Section", "Blocks", "Size"})
	for _, c := range r.Breakdown {
		for i, s := range c.Sections {
			name := c.Chapter
			if i > 0 {
				name = ""
			}
			table.Append([]string{name, s.Section, strconv.Itoa(s.Blocks), humanBytes(int(s.Bytes))})
		}
	}
	table.Render()
	fmt.Println()

	if r.Sizes.Count > 0 {
		fmt.Printf("%d chapters, %d sections; section size p50 %s, p95 %s\n\n",
			r.Chapters, r.Sections,
			humanBytes(int(r.Sizes.P50Bytes)), humanBytes(int(r.Sizes.P95Bytes)))
	}
}

func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
