// Package manifest defines the package build manifest model.
//
// A manifest declares package metadata, dependency tables with version
// constraints, optional "extras" groups bundling optional dependencies,
// and the build backend that turns the package into a distributable
// artifact. devx parses and validates manifests; resolving or installing
// the declared dependencies is the resolver's job, not ours.
package manifest

import (
	"github.com/Masterminds/semver/v3"

	"github.com/devx-cli/devx/internal/errors"
)

// Dependency group names.
const (
	// GroupMain holds runtime dependencies.
	GroupMain = "main"

	// GroupDev holds development-only dependencies.
	GroupDev = "dev"
)

// Manifest is the parsed package build manifest.
type Manifest struct {
	// Name is the package name.
	Name string `json:"name"`

	// Version is the package version.
	Version string `json:"version"`

	// Description is the one-line package description.
	Description string `json:"description,omitempty"`

	// Authors lists package authors as free-form strings.
	Authors []string `json:"authors,omitempty"`

	// Dependencies holds all declared dependencies across groups,
	// sorted by name within each group.
	Dependencies []Dependency `json:"dependencies"`

	// Extras maps extras group names to the dependency names they bundle.
	Extras map[string][]string `json:"extras,omitempty"`

	// Build declares the build backend.
	Build BuildSystem `json:"build"`
}

// Dependency is a single dependency entry.
type Dependency struct {
	// Name is the dependency package name.
	Name string `json:"name"`

	// Constraint is the raw version constraint string (e.g. "^1.2", ">=0.5,<1.0").
	Constraint string `json:"constraint"`

	// Optional marks the dependency as installable only through an extras group.
	Optional bool `json:"optional,omitempty"`

	// Group names the dependency table this entry came from.
	Group string `json:"group"`
}

// BuildSystem is the build-backend declaration.
type BuildSystem struct {
	// Requires lists the build-time requirements.
	Requires []string `json:"requires,omitempty"`

	// Backend names the build backend entry point.
	Backend string `json:"backend,omitempty"`

	// Declared is true when the manifest contains a build-system table at all.
	Declared bool `json:"declared"`
}

// Dependency returns the dependency with the given name, searching all
// groups in order, or nil when not declared.
func (m *Manifest) Dependency(name string) *Dependency {
	for i := range m.Dependencies {
		if m.Dependencies[i].Name == name {
			return &m.Dependencies[i]
		}
	}
	return nil
}

// Group returns the dependencies belonging to the named group.
func (m *Manifest) Group(group string) []Dependency {
	var out []Dependency
	for _, d := range m.Dependencies {
		if d.Group == group {
			out = append(out, d)
		}
	}
	return out
}

// CheckConstraint checks that a version constraint is syntactically
// valid. The wildcard "*" is accepted; anything else must parse as a
// semver range. Invalid constraints wrap ErrInvalidConstraint.
func CheckConstraint(constraint string) error {
	if constraint == "*" {
		return nil
	}
	if _, err := semver.NewConstraint(constraint); err != nil {
		return errors.Wrapf(errors.ErrInvalidConstraint, "%q: %v", constraint, err)
	}
	return nil
}
