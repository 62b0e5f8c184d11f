package hooks

import (
	"fmt"
	"io"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/hooks"
	"github.com/devx-cli/devx/internal/hooks/parser"
)

var showFile string

func init() {
	showCmd.Flags().StringVarP(&showFile, "file", "f", "",
		"pipeline file to read (default: project pipeline)")
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [hook-id]",
	Short: "Show a single hook",
	Long: `Show one hook's full configuration.

With a hook-id argument, shows that hook. Without an argument, opens an
interactive picker over all configured hooks.

The positional argument selects the hook, so unlike the other hooks
subcommands the pipeline file is given with --file instead of a path
argument.`,
	Example: `  # Show a specific hook
  devx hooks show trailing-whitespace

  # Pick a hook interactively
  devx hooks show

  # Read a specific pipeline file
  devx hooks show lint --file ./.pre-commit-config.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

// hookEntry pairs a hook with its source repo for display.
type hookEntry struct {
	Repo hooks.Repo
	Hook hooks.Hook
}

func runShow(cmd *cobra.Command, args []string) error {
	var pathArgs []string
	if showFile != "" {
		pathArgs = []string{showFile}
	}
	path, err := resolvePath(pathArgs)
	if err != nil {
		return err
	}

	p, err := parser.ParseFile(path)
	if err != nil {
		return errors.NewUserError(err, "Run: devx hooks validate")
	}

	entries := collectEntries(p)
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No hooks configured.")
		return nil
	}

	var entry *hookEntry
	if len(args) == 1 {
		entry = findEntry(entries, args[0])
		if entry == nil {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrNotFound, "hook %q in %s", args[0], path),
				"Run: devx hooks list")
		}
	} else {
		entry, err = pickEntry(entries)
		if err != nil {
			return err
		}
		if entry == nil {
			// Picker aborted.
			return nil
		}
	}

	outputHook(cmd.OutOrStdout(), p, entry)
	return nil
}

func collectEntries(p *hooks.Pipeline) []hookEntry {
	var entries []hookEntry
	for _, repo := range p.Repos {
		for _, hook := range repo.Hooks {
			entries = append(entries, hookEntry{Repo: repo, Hook: hook})
		}
	}
	return entries
}

func findEntry(entries []hookEntry, id string) *hookEntry {
	for i := range entries {
		if entries[i].Hook.ID == id {
			return &entries[i]
		}
	}
	return nil
}

// pickEntry opens an interactive fuzzy picker over the hooks.
func pickEntry(entries []hookEntry) (*hookEntry, error) {
	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", entries[i].Hook.ID, entries[i].Repo.Source)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			return fmt.Sprintf("ID: %s\nSource: %s\nRev: %s\nStages: %s",
				e.Hook.ID,
				e.Repo.Source,
				orDash(e.Repo.Rev),
				orDash(strings.Join(e.Hook.Stages, ",")),
			)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive hook selection failed")
	}
	return &entries[idx], nil
}

func outputHook(w io.Writer, p *hooks.Pipeline, entry *hookEntry) {
	hook := entry.Hook
	fmt.Fprintf(w, "%s\n", hook.ID)
	if hook.Name != "" {
		fmt.Fprintf(w, "  name:     %s\n", hook.Name)
	}
	fmt.Fprintf(w, "  source:   %s\n", entry.Repo.Source)
	if entry.Repo.Remote() {
		fmt.Fprintf(w, "  rev:      %s\n", orDash(entry.Repo.Rev))
	}
	fmt.Fprintf(w, "  stages:   %s\n", formatStages(hook, p))
	if len(hook.Args) > 0 {
		fmt.Fprintf(w, "  args:     %s\n", strings.Join(hook.Args, " "))
	}
	if hook.Files != "" {
		fmt.Fprintf(w, "  files:    %s\n", hook.Files)
	}
	if hook.Entry != "" {
		fmt.Fprintf(w, "  entry:    %s\n", hook.Entry)
	}
	if hook.Language != "" {
		fmt.Fprintf(w, "  language: %s\n", hook.Language)
	}
}
