package site

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/cmd/devx/commands/project"
	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/site/parser"
	sitevalidator "github.com/devx-cli/devx/internal/site/validator"
	"github.com/devx-cli/devx/internal/validator"
)

var (
	validateJSON    bool
	validateDocsDir string
)

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	validateCmd.Flags().StringVar(&validateDocsDir, "docs-dir", "",
		"docs directory for nav page checks (default: project docs dir)")
	Cmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate the site configuration",
	Long: `Parse and validate the documentation site configuration.

Without a path argument, validates the project's configured file.
Checks that the site and theme are named, plugin and markdown extension
entries are well-formed, and nav entries reference existing pages.

Exit codes:
  0 - Configuration is valid (warnings allowed)
  1 - Configuration has validation errors or cannot be parsed`,
	Example: `  # Validate the project site configuration
  devx site validate

  # Validate a specific file against a docs tree
  devx site validate ./mkdocs.yml --docs-dir ./docs

  # Machine-readable output
  devx site validate --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, docsDir, err := resolvePaths(args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	cfg, parseErr := parser.ParseFile(path)
	if parseErr != nil {
		return outputParseError(w, path, parseErr, validateJSON)
	}

	var opts []sitevalidator.Option
	if docsDir != "" {
		opts = append(opts, sitevalidator.WithDocsDir(docsDir))
	}

	result := sitevalidator.New(opts...).ValidateWithPath(cfg, path)
	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(w, format).Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return errValidationFailed
	}
	return nil
}

// resolvePaths picks the config path and docs directory from arguments,
// flags, and the project context.
func resolvePaths(args []string) (path, docsDir string, err error) {
	docsDir = validateDocsDir

	if len(args) == 1 {
		// An explicit path skips project lookup; nav checks need --docs-dir.
		return args[0], docsDir, nil
	}

	ctx, err := project.Locate()
	if err != nil {
		return "", "", errors.NewSystemError(err, "check that the working directory is accessible")
	}
	if docsDir == "" {
		docsDir = ctx.DocsDir
	}
	return ctx.Site, docsDir, nil
}

// outputParseError reports a parse failure and signals a non-zero exit.
func outputParseError(w io.Writer, path string, parseErr error, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"valid":       false,
			"path":        path,
			"parse_error": parseErr.Error(),
		}
		if err := enc.Encode(payload); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
		return errValidationFailed
	}

	fmt.Fprintf(w, "Parse failed for %s:\n  %s\n", path, parseErr)
	return errValidationFailed
}

// errValidationFailed signals a non-zero exit after issues were reported.
var errValidationFailed = errors.ErrInvalidSiteConfig
