// Package paths resolves the configuration files devx operates on.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/devx-cli/devx/internal/errors"
)

// Default file names for the three configuration surfaces.
const (
	// DefaultManifest is the package build manifest.
	DefaultManifest = "pyproject.toml"

	// DefaultHooks is the pre-commit hook pipeline definition.
	DefaultHooks = ".pre-commit-config.yaml"

	// DefaultSite is the documentation-site generator configuration.
	DefaultSite = "mkdocs.yml"

	// DefaultDocsDir is the documentation source directory.
	DefaultDocsDir = "docs"

	// DefaultTagSummary is the generated code-tag summary file.
	DefaultTagSummary = "TAG_SUMMARY.md"
)

// ErrProjectRootNotFound indicates no manifest was found walking up from the start directory.
var ErrProjectRootNotFound = errors.New("project root not found (no manifest in any parent directory)")

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// FindProjectRoot walks up from start looking for a directory containing a
// manifest file. Returns the first match, or ErrProjectRootNotFound.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrap(err, "resolving start directory")
	}

	for {
		candidate := filepath.Join(dir, DefaultManifest)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrProjectRootNotFound
		}
		dir = parent
	}
}

// Resolve returns path unchanged when absolute, otherwise joined onto root.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
