// Package manifest provides CLI commands for the package build manifest.
package manifest

import "github.com/spf13/cobra"

// Cmd is the root manifest command.
var Cmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect and validate the package build manifest",
	Long: `Inspect and validate the package build manifest (pyproject.toml).

The manifest declares package metadata, dependency tables with version
constraints, extras groups bundling optional dependencies, and the build
backend.`,
	Example: `  # Validate the project manifest
  devx manifest validate

  # Validate a specific file
  devx manifest validate ./configs/pyproject.toml

  # Show the parsed manifest
  devx manifest show

  # List extras groups and their members
  devx manifest extras

  See Also:
    devx manifest validate - Validate the manifest
    devx manifest show     - Show the parsed manifest
    devx manifest extras   - List extras groups`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
