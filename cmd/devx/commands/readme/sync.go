package readme

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/cmd/devx/commands/project"
	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/readme"
)

func init() {
	Cmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync [path]",
	Short: "Rewrite marked sections from their source files",
	Long: `Rewrite the marked sections of a README-style file.

Without a path argument, syncs README.md in the project root. Sections
whose referenced file is missing are left untouched and reported.

Exit codes:
  0 - All sections synced (file may be unchanged)
  1 - One or more referenced files are missing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, err := project.Locate()
	if err != nil {
		return errors.NewSystemError(err, "check that the working directory is accessible")
	}

	path := filepath.Join(ctx.Root, "README.md")
	if len(args) == 1 {
		path = args[0]
	}

	result, err := readme.Sync(path, ctx.Root)
	if err != nil {
		return errors.NewUserError(err, "check the section markers in "+path)
	}

	w := cmd.OutOrStdout()
	switch {
	case result.Changed:
		fmt.Fprintf(w, "Updated %d section(s) in %s\n", len(result.Updated), path)
	case len(result.Updated) > 0:
		fmt.Fprintf(w, "%d section(s) already up to date in %s\n", len(result.Updated), path)
	default:
		fmt.Fprintf(w, "No sections found in %s\n", path)
	}

	if len(result.Missing) > 0 {
		for _, key := range result.Missing {
			fmt.Fprintf(w, "  missing source: %s\n", key)
		}
		return errors.NewUserError(
			errors.Newf("%d section(s) reference missing files", len(result.Missing)),
			"create the referenced files or remove the markers")
	}
	return nil
}
