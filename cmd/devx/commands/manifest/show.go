package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/manifest"
	"github.com/devx-cli/devx/internal/manifest/parser"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false,
		"output the parsed manifest as JSON")
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show the parsed manifest",
	Long: `Parse the package build manifest and print its contents.

Dependencies are grouped by dependency table, with constraints and
optional markers. Use --json for the full parsed structure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args)
	if err != nil {
		return err
	}

	m, err := parser.ParseFile(path)
	if err != nil {
		return errors.NewUserError(err, "Run: devx manifest validate")
	}

	w := cmd.OutOrStdout()
	if showJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(m), "encoding JSON")
	}

	outputManifest(w, m)
	return nil
}

func outputManifest(w io.Writer, m *manifest.Manifest) {
	fmt.Fprintf(w, "%s %s\n", m.Name, m.Version)
	if m.Description != "" {
		fmt.Fprintf(w, "  %s\n", m.Description)
	}
	if len(m.Authors) > 0 {
		fmt.Fprintf(w, "  authors: %s\n", strings.Join(m.Authors, ", "))
	}
	fmt.Fprintln(w)

	for _, group := range []string{manifest.GroupMain, manifest.GroupDev} {
		deps := m.Group(group)
		if len(deps) == 0 {
			continue
		}
		fmt.Fprintf(w, "Dependencies (%s):\n", group)
		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		for _, d := range deps {
			marker := ""
			if d.Optional {
				marker = "(optional)"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", d.Name, d.Constraint, marker)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if m.Build.Declared {
		fmt.Fprintf(w, "Build backend: %s\n", m.Build.Backend)
		if len(m.Build.Requires) > 0 {
			fmt.Fprintf(w, "  requires: %s\n", strings.Join(m.Build.Requires, ", "))
		}
	}
}
