package manifest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/devx-cli/devx/cmd/devx/commands/project"
	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/manifest/parser"
	manifestvalidator "github.com/devx-cli/devx/internal/manifest/validator"
	"github.com/devx-cli/devx/internal/validator"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	Cmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate the package manifest",
	Long: `Parse and validate the package build manifest.

Without a path argument, validates the project's configured manifest.
Checks metadata completeness, version and constraint syntax, extras
group integrity, and the build-system declaration.

Exit codes:
  0 - Manifest is valid (warnings allowed)
  1 - Manifest has validation errors or cannot be parsed`,
	Example: `  # Validate the project manifest
  devx manifest validate

  # Validate a specific file
  devx manifest validate ./pyproject.toml

  # Machine-readable output
  devx manifest validate --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	m, parseErr := parser.ParseFile(path)
	if parseErr != nil {
		return outputParseError(w, path, parseErr, validateJSON)
	}

	result := manifestvalidator.New().ValidateWithPath(m, path)
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

// resolvePath picks the explicit argument or the project's manifest.
func resolvePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	ctx, err := project.Locate()
	if err != nil {
		return "", errors.NewSystemError(err, "check that the working directory is accessible")
	}
	return ctx.Manifest, nil
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
var errValidationFailed = errors.ErrInvalidManifest
