// Package cmd implements the chartbar command-line interface: a thin demo
// shell that feeds a YAML series file through the plot pipeline and renders
// the result as a PNG or as ANSI bars in the terminal.
package cmd

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the chartbar CLI and returns an error if any command fails.
//
// Logging goes to stderr at info level, or debug with --verbose. The logger
// travels on the command context.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "chartbar",
		Short:        "Render bar charts from YAML series files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(renderCommand())

	return root.Execute()
}
