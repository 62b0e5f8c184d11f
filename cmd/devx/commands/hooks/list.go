package hooks

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/hooks"
	"github.com/devx-cli/devx/internal/hooks/parser"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false,
		"output hooks as JSON")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List configured hooks",
	Long: `List all hooks in the pipeline, grouped by source.

Each hook is shown with its source repository, pinned revision, and
effective lifecycle stages.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args)
	if err != nil {
		return err
	}

	p, err := parser.ParseFile(path)
	if err != nil {
		return errors.NewUserError(err, "Run: devx hooks validate")
	}

	w := cmd.OutOrStdout()
	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(p), "encoding JSON")
	}

	outputList(w, p)
	return nil
}

func outputList(w io.Writer, p *hooks.Pipeline) {
	if len(p.Repos) == 0 {
		fmt.Fprintln(w, "No hook sources configured.")
		return
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HOOK\tSOURCE\tREV\tSTAGES")
	for _, repo := range p.Repos {
		for _, hook := range repo.Hooks {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				hook.ID, repo.Source, orDash(repo.Rev), formatStages(hook, p))
		}
	}
	tw.Flush()
}

// formatStages renders the stages a hook runs at, falling back to the
// pipeline default.
func formatStages(hook hooks.Hook, p *hooks.Pipeline) string {
	stages := hook.Stages
	if len(stages) == 0 {
		stages = p.DefaultStages
	}
	if len(stages) == 0 {
		return "all"
	}
	return strings.Join(stages, ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
