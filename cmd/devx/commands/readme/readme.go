// Package readme provides CLI commands for marked README sections.
package readme

import "github.com/spf13/cobra"

// Cmd is the root readme command.
var Cmd = &cobra.Command{
	Use:   "readme",
	Short: "Maintain marked README sections",
	Long: `Maintain README sections that mirror other files.

A section is delimited by HTML comment markers naming the source file:

  <!-- CODE:tests/examples/demo.py -->
  ...
  <!-- /CODE:tests/examples/demo.py -->

The sync command replaces each section body with the referenced file's
contents in a fenced code block.`,
	Example: `  # Sync the project README
  devx readme sync

  # Sync a specific file
  devx readme sync ./docs/USAGE.md

  See Also:
    devx readme sync - Rewrite marked sections`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
