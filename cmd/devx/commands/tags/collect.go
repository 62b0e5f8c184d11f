package tags

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/cmd/devx/commands/project"
	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/paths"
	"github.com/devx-cli/devx/internal/tags"
)

var collectOutput string

func init() {
	collectCmd.Flags().StringVarP(&collectOutput, "output", "o", "",
		"summary file path (default: TAG_SUMMARY.md in the project root)")
	Cmd.AddCommand(collectCmd)
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Write the tag summary file",
	Long: `Scan the project and write the tagged-comment summary file.

When no tagged comments are found, an existing summary file is removed
instead.`,
	Args: cobra.NoArgs,
	RunE: runCollect,
}

func runCollect(cmd *cobra.Command, _ []string) error {
	ctx, err := project.Locate()
	if err != nil {
		return errors.NewSystemError(err, "check that the working directory is accessible")
	}

	scanner, err := newScanner(ctx)
	if err != nil {
		return err
	}

	collection, err := scanner.Scan(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "scanning for tagged comments")
	}

	out := collectOutput
	if out == "" {
		out = filepath.Join(ctx.Root, paths.DefaultTagSummary)
	}

	written, err := tags.WriteSummary(out, collection)
	if err != nil {
		return errors.NewSystemError(err, "check permissions on "+out)
	}

	w := cmd.OutOrStdout()
	if !written {
		fmt.Fprintln(w, "No tagged comments found; summary removed.")
		return nil
	}

	total := 0
	for _, ft := range collection {
		total += len(ft.Comments)
	}
	fmt.Fprintf(w, "Wrote %d tagged comment(s) from %d file(s) to %s\n",
		total, len(collection), out)
	return nil
}
