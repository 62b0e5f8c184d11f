package site

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/cmd/devx/commands/project"
	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/site"
	"github.com/devx-cli/devx/internal/site/parser"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false,
		"output the parsed configuration as JSON")
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show the parsed site configuration",
	Long: `Parse the site configuration and print its contents: the theme,
plugins, markdown extensions, and the pages referenced by the nav tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		ctx, err := project.Locate()
		if err != nil {
			return errors.NewSystemError(err, "check that the working directory is accessible")
		}
		path = ctx.Site
	}

	cfg, err := parser.ParseFile(path)
	if err != nil {
		return errors.NewUserError(err, "Run: devx site validate")
	}

	w := cmd.OutOrStdout()
	if showJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(cfg), "encoding JSON")
	}

	outputConfig(w, cfg)
	return nil
}

func outputConfig(w io.Writer, cfg *site.Config) {
	fmt.Fprintf(w, "%s\n", cfg.SiteName)
	if cfg.SiteURL != "" {
		fmt.Fprintf(w, "  url:   %s\n", cfg.SiteURL)
	}
	fmt.Fprintf(w, "  theme: %s\n", cfg.Theme.Name)
	fmt.Fprintln(w)

	outputEntries(w, "Plugins", cfg.Plugins)
	outputEntries(w, "Markdown extensions", cfg.MarkdownExtensions)

	if pages := cfg.Pages(); len(pages) > 0 {
		fmt.Fprintln(w, "Nav pages:")
		for _, page := range pages {
			fmt.Fprintf(w, "  %s\n", page)
		}
	}
}

func outputEntries(w io.Writer, label string, entries []site.NamedEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, entry := range entries {
		if len(entry.Options) > 0 {
			fmt.Fprintf(w, "  %s (%d options)\n", entry.Name, len(entry.Options))
			continue
		}
		fmt.Fprintf(w, "  %s\n", entry.Name)
	}
	fmt.Fprintln(w)
}
