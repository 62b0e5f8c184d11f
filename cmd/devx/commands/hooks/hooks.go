// Package hooks provides CLI commands for the pre-commit hook pipeline.
package hooks

import "github.com/spf13/cobra"

// Cmd is the root hooks command.
var Cmd = &cobra.Command{
	Use:   "hooks",
	Short: "Inspect and validate the hook pipeline",
	Long: `Inspect and validate the pre-commit hook pipeline definition
(.pre-commit-config.yaml).

The pipeline lists hook sources pinned to revisions, the hooks taken
from each source, and the git lifecycle stages they run at.`,
	Example: `  # Validate the pipeline
  devx hooks validate

  # List all configured hooks
  devx hooks list

  # Show one hook, or pick interactively
  devx hooks show trailing-whitespace
  devx hooks show

  See Also:
    devx hooks validate - Validate the pipeline
    devx hooks list     - List configured hooks
    devx hooks show     - Show a single hook`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
