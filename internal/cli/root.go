// Package cli wires the docpack subcommands. Every transform mode is one
// subcommand with its exclusion prefixes and chapter schema compiled in;
// there are no flags on the transform modes and no environment lookups.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "docpack [command]",
	Short: "docpack reshapes a documentation block corpus",
	Long: `docpack reads a flat block corpus (content.json) from the working
directory and derives filtered, regrouped or merged views of it. Each
subcommand is one fixed transform; outputs land next to the input.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Any error is classified, printed to stderr, and the
// process exits 1.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, Diagnose(err))
		os.Exit(1)
	}
}

// Diagnose renders an error with its taxonomy class: a missing input file and
// invalid JSON read distinctly, everything else surfaces with its own message.
func Diagnose(err error) string {
	var syntaxErr *json.SyntaxError
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if errors.As(err, &pathErr) {
			return fmt.Sprintf("Error: file not found: %s", pathErr.Path)
		}
		return fmt.Sprintf("Error: file not found: %v", err)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("Error: invalid JSON at offset %d: %v", syntaxErr.Offset, err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
