// Package tags provides CLI commands for the tagged-comment summary.
package tags

import (
	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/cmd/devx/commands/project"
	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/tags"
)

// Cmd is the root tags command.
var Cmd = &cobra.Command{
	Use:   "tags",
	Short: "Collect tagged comments into a summary",
	Long: `Scan the project for tagged comments (TODO, FIXME, HACK, and
friends) and maintain a single review summary.

Files opt out of collection by carrying a ":skip_tags:" marker within
their first lines.`,
	Example: `  # Write the summary file
  devx tags collect

  # Print the report without writing
  devx tags list

  See Also:
    devx tags collect - Write the summary file
    devx tags list    - Print the report`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// newScanner builds a scanner from the project context.
func newScanner(ctx *project.Context) (*tags.Scanner, error) {
	var opts []tags.ScanOption
	if len(ctx.Tags.Suffixes) > 0 {
		opts = append(opts, tags.WithSuffixes(ctx.Tags.Suffixes))
	}
	if len(ctx.Tags.IgnoreDirs) > 0 {
		opts = append(opts, tags.WithIgnoreDirs(ctx.Tags.IgnoreDirs))
	}
	if len(ctx.Tags.Names) > 0 {
		opts = append(opts, tags.WithTags(ctx.Tags.Names))
	}

	scanner, err := tags.NewScanner(ctx.Root, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "configuring tag scanner")
	}
	return scanner, nil
}
