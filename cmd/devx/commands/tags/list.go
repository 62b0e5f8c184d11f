package tags

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/cmd/devx/commands/project"
	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/tags"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false,
		"output tagged comments as JSON")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the tag report",
	Long:  `Scan the project and print the tagged-comment report without writing the summary file.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
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

	w := cmd.OutOrStdout()
	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(collection), "encoding JSON")
	}

	report := tags.FormatReport(collection)
	if report == "" {
		fmt.Fprintln(w, "No tagged comments found.")
		return nil
	}
	fmt.Fprint(w, report)
	return nil
}
