// Package site provides CLI commands for the documentation site configuration.
package site

import "github.com/spf13/cobra"

// Cmd is the root site command.
var Cmd = &cobra.Command{
	Use:   "site",
	Short: "Inspect and validate the docs site configuration",
	Long: `Inspect and validate the documentation site generator
configuration (mkdocs.yml).

The configuration names the theme and its options, the enabled plugins
and markdown extensions, the nav tree, and static asset paths.`,
	Example: `  # Validate the site configuration
  devx site validate

  # Show the parsed configuration
  devx site show

  See Also:
    devx site validate - Validate the configuration
    devx site show     - Show the parsed configuration`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
