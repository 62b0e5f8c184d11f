// Package parser loads package build manifests from TOML.
package parser

import (
	"fmt"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/manifest"
)

// ErrInvalidTOML indicates the input is not valid TOML.
var ErrInvalidTOML = errors.New("invalid TOML")

// ParseError wraps errors that occur during parsing with path context.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parsing manifest %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parsing manifest: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// rawManifest mirrors the on-disk TOML layout.
type rawManifest struct {
	Tool struct {
		Poetry struct {
			Name            string              `toml:"name"`
			Version         string              `toml:"version"`
			Description     string              `toml:"description"`
			Authors         []string            `toml:"authors"`
			Dependencies    map[string]any      `toml:"dependencies"`
			DevDependencies map[string]any      `toml:"dev-dependencies"`
			Extras          map[string][]string `toml:"extras"`
		} `toml:"poetry"`
	} `toml:"tool"`
	BuildSystem *struct {
		Requires     []string `toml:"requires"`
		BuildBackend string   `toml:"build-backend"`
	} `toml:"build-system"`
}

// Parse reads a manifest from TOML bytes.
// Returns an error wrapping ErrInvalidTOML with line/column context when the
// input is malformed.
func Parse(data []byte) (*manifest.Manifest, error) {
	var raw rawManifest
	if err := toml.Unmarshal(data, &raw); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, errors.Wrapf(ErrInvalidTOML, "line %d, column %d: %v", row, col, decodeErr.Error())
		}
		return nil, errors.Wrapf(ErrInvalidTOML, "%v", err)
	}

	m := &manifest.Manifest{
		Name:        raw.Tool.Poetry.Name,
		Version:     raw.Tool.Poetry.Version,
		Description: raw.Tool.Poetry.Description,
		Authors:     raw.Tool.Poetry.Authors,
		Extras:      raw.Tool.Poetry.Extras,
	}

	m.Dependencies = append(m.Dependencies,
		normalizeGroup(raw.Tool.Poetry.Dependencies, manifest.GroupMain)...)
	m.Dependencies = append(m.Dependencies,
		normalizeGroup(raw.Tool.Poetry.DevDependencies, manifest.GroupDev)...)

	if raw.BuildSystem != nil {
		m.Build = manifest.BuildSystem{
			Requires: raw.BuildSystem.Requires,
			Backend:  raw.BuildSystem.BuildBackend,
			Declared: true,
		}
	}

	return m, nil
}

// ParseFile reads a manifest from a file path.
func ParseFile(path string) (*manifest.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Mark(err, errors.ErrNotFound)
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	m, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return m, nil
}

// normalizeGroup converts a raw dependency table into Dependency entries.
// Entries are either a bare constraint string or an inline table carrying
// at least "version" and optionally "optional". TOML parsing already
// guarantees key uniqueness within the table.
func normalizeGroup(table map[string]any, group string) []manifest.Dependency {
	if len(table) == 0 {
		return nil
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]manifest.Dependency, 0, len(names))
	for _, name := range names {
		dep := manifest.Dependency{Name: name, Group: group}

		switch v := table[name].(type) {
		case string:
			dep.Constraint = v
		case map[string]any:
			if version, ok := v["version"].(string); ok {
				dep.Constraint = version
			}
			if optional, ok := v["optional"].(bool); ok {
				dep.Optional = optional
			}
		}

		deps = append(deps, dep)
	}

	return deps
}
