// Package validator checks parsed manifests against the manifest schema
// invariants: unique dependency names, syntactically valid version
// constraints, extras groups that reference declared dependencies, and a
// non-empty build-backend declaration.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/devx-cli/devx/internal/manifest"
	"github.com/devx-cli/devx/internal/validator"
)

// Validator validates Manifest structs.
type Validator struct{}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks a manifest and returns the collected issues.
func (v *Validator) Validate(m *manifest.Manifest) *validator.Result {
	result := &validator.Result{}

	v.validateMetadata(m, result)
	v.validateDependencies(m, result)
	v.validateExtras(m, result)
	v.validateBuildSystem(m, result)

	return result
}

// ValidateWithPath validates a manifest and records the source path on the result.
func (v *Validator) ValidateWithPath(m *manifest.Manifest, path string) *validator.Result {
	result := v.Validate(m)
	result.Path = path
	return result
}

func (v *Validator) validateMetadata(m *manifest.Manifest, result *validator.Result) {
	if m.Name == "" {
		result.AddError("name", "package name is required", nil)
	}

	if m.Version == "" {
		result.AddError("version", "package version is required", nil)
	} else if _, err := semver.NewVersion(m.Version); err != nil {
		result.AddError("version", "package version is not a valid semantic version", m.Version)
	}

	if m.Description == "" {
		result.AddWarning("description", "package description is empty", nil)
	}
}

func (v *Validator) validateDependencies(m *manifest.Manifest, result *validator.Result) {
	// Names are unique within a table by construction (TOML keys); flag the
	// same name appearing in more than one group since the resolver would
	// have to reconcile conflicting constraints.
	seen := make(map[string]string)

	for _, dep := range m.Dependencies {
		field := fmt.Sprintf("dependencies.%s", dep.Name)

		if prevGroup, ok := seen[dep.Name]; ok {
			result.AddWarning(field,
				fmt.Sprintf("declared in both %q and %q groups", prevGroup, dep.Group), nil)
		} else {
			seen[dep.Name] = dep.Group
		}

		v.validateConstraint(field, dep.Constraint, result)
	}
}

func (v *Validator) validateConstraint(field, constraint string, result *validator.Result) {
	if constraint == "" {
		result.AddError(field, "version constraint is required", nil)
		return
	}

	if constraint == "*" {
		result.AddWarning(field, "constraint is unbounded", constraint)
		return
	}

	if err := manifest.CheckConstraint(constraint); err != nil {
		result.AddError(field, "version constraint is not syntactically valid", constraint)
	}
}

func (v *Validator) validateExtras(m *manifest.Manifest, result *validator.Result) {
	groups := make([]string, 0, len(m.Extras))
	for name := range m.Extras {
		groups = append(groups, name)
	}
	sort.Strings(groups)

	inExtras := make(map[string]bool)

	for _, group := range groups {
		field := fmt.Sprintf("extras.%s", group)

		if strings.TrimSpace(group) == "" {
			result.AddError("extras", "extras group name must not be empty", nil)
			continue
		}

		members := m.Extras[group]
		if len(members) == 0 {
			result.AddWarning(field, "extras group has no members", nil)
		}

		for _, member := range members {
			inExtras[member] = true

			dep := m.Dependency(member)
			if dep == nil {
				result.AddError(field, "references undeclared dependency", member)
				continue
			}
			if !dep.Optional {
				result.AddWarning(field,
					fmt.Sprintf("member %q is not marked optional", member), nil)
			}
		}
	}

	// Optional dependencies that no extras group exposes can never be installed.
	for _, dep := range m.Dependencies {
		if dep.Optional && !inExtras[dep.Name] {
			result.AddWarning(fmt.Sprintf("dependencies.%s", dep.Name),
				"optional dependency is not referenced by any extras group", nil)
		}
	}
}

func (v *Validator) validateBuildSystem(m *manifest.Manifest, result *validator.Result) {
	if !m.Build.Declared {
		result.AddWarning("build-system", "no build-system table declared", nil)
		return
	}

	if strings.TrimSpace(m.Build.Backend) == "" {
		result.AddError("build-system.build-backend", "build backend must not be empty", nil)
	}

	if len(m.Build.Requires) == 0 {
		result.AddWarning("build-system.requires", "build requirements are empty", nil)
	}
	for _, req := range m.Build.Requires {
		if strings.TrimSpace(req) == "" {
			result.AddError("build-system.requires", "build requirement must not be empty", nil)
		}
	}
}
