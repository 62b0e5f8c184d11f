package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/manifest"
	"github.com/devx-cli/devx/internal/manifest/parser"
)

var extrasJSON bool

func init() {
	extrasCmd.Flags().BoolVar(&extrasJSON, "json", false,
		"output extras groups as JSON")
	Cmd.AddCommand(extrasCmd)
}

var extrasCmd = &cobra.Command{
	Use:   "extras [path]",
	Short: "List extras groups and their members",
	Long: `List the manifest's extras groups.

Each group is shown with its member dependencies. Members that are not
declared in any dependency table are flagged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtras,
}

func runExtras(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args)
	if err != nil {
		return err
	}

	m, err := parser.ParseFile(path)
	if err != nil {
		return errors.NewUserError(err, "Run: devx manifest validate")
	}

	w := cmd.OutOrStdout()
	if extrasJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(m.Extras), "encoding JSON")
	}

	outputExtras(w, m)
	return nil
}

func outputExtras(w io.Writer, m *manifest.Manifest) {
	if len(m.Extras) == 0 {
		fmt.Fprintln(w, "No extras groups declared.")
		return
	}

	groups := make([]string, 0, len(m.Extras))
	for name := range m.Extras {
		groups = append(groups, name)
	}
	sort.Strings(groups)

	for _, group := range groups {
		fmt.Fprintf(w, "%s:\n", group)
		for _, member := range m.Extras[group] {
			if m.Dependency(member) == nil {
				fmt.Fprintf(w, "  %s (undeclared)\n", member)
				continue
			}
			fmt.Fprintf(w, "  %s\n", member)
		}
	}
}
