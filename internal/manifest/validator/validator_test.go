package validator

import (
	"strings"
	"testing"

	"github.com/devx-cli/devx/internal/manifest"
	"github.com/devx-cli/devx/internal/validator"
)

func valid() *manifest.Manifest {
	return &manifest.Manifest{
		Name:        "demo",
		Version:     "1.2.3",
		Description: "A demo package",
		Dependencies: []manifest.Dependency{
			{Name: "loguru", Constraint: ">=0.5", Group: manifest.GroupMain},
			{Name: "mkdocs", Constraint: "^1.1", Optional: true, Group: manifest.GroupMain},
			{Name: "pytest", Constraint: "^6.2", Group: manifest.GroupDev},
		},
		Extras: map[string][]string{
			"docs": {"mkdocs"},
		},
		Build: manifest.BuildSystem{
			Requires: []string{"poetry-core>=1.0.0"},
			Backend:  "poetry.core.masonry.api",
			Declared: true,
		},
	}
}

func findIssue(t *testing.T, result *validator.Result, field, fragment string) *validator.Issue {
	t.Helper()
	for i := range result.Issues {
		issue := &result.Issues[i]
		if issue.Field == field && strings.Contains(issue.Message, fragment) {
			return issue
		}
	}
	return nil
}

func TestValidate_CleanManifest(t *testing.T) {
	result := New().Validate(valid())

	if result.HasErrors() {
		t.Errorf("unexpected errors: %v", result.Errors())
	}
	if result.HasWarnings() {
		t.Errorf("unexpected warnings: %v", result.Warnings())
	}
}

func TestValidate_Metadata(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*manifest.Manifest)
		field   string
		message string
		wantErr bool
	}{
		{
			name:    "missing name",
			mutate:  func(m *manifest.Manifest) { m.Name = "" },
			field:   "name",
			message: "required",
			wantErr: true,
		},
		{
			name:    "missing version",
			mutate:  func(m *manifest.Manifest) { m.Version = "" },
			field:   "version",
			message: "required",
			wantErr: true,
		},
		{
			name:    "malformed version",
			mutate:  func(m *manifest.Manifest) { m.Version = "not.a.version" },
			field:   "version",
			message: "not a valid semantic version",
			wantErr: true,
		},
		{
			name:    "empty description",
			mutate:  func(m *manifest.Manifest) { m.Description = "" },
			field:   "description",
			message: "empty",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)

			result := New().Validate(m)
			issue := findIssue(t, result, tt.field, tt.message)
			if issue == nil {
				t.Fatalf("issue not found; got %v", result.Issues)
			}
			gotErr := issue.Severity == validator.SeverityError
			if gotErr != tt.wantErr {
				t.Errorf("severity = %v, wantErr = %v", issue.Severity, tt.wantErr)
			}
		})
	}
}

func TestValidate_Constraints(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantErrors bool
		wantWarns  bool
	}{
		{"caret", "^1.2", false, false},
		{"tilde", "~1.2.3", false, false},
		{"range", ">=0.5, <1.0", false, false},
		{"exact", "1.2.3", false, false},
		{"unbounded star", "*", false, true},
		{"empty", "", true, false},
		{"garbage", ">>>nope", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			m.Dependencies = []manifest.Dependency{
				{Name: "pkg", Constraint: tt.constraint, Group: manifest.GroupMain},
			}
			m.Extras = nil

			result := New().Validate(m)
			if got := result.HasErrors(); got != tt.wantErrors {
				t.Errorf("HasErrors() = %v, want %v (issues: %v)", got, tt.wantErrors, result.Issues)
			}
			if got := result.HasWarnings(); got != tt.wantWarns {
				t.Errorf("HasWarnings() = %v, want %v (issues: %v)", got, tt.wantWarns, result.Issues)
			}
		})
	}
}

func TestValidate_ExtrasReferenceDeclaredDeps(t *testing.T) {
	m := valid()
	m.Extras["docs"] = []string{"mkdocs", "ghost-package"}

	result := New().Validate(m)

	issue := findIssue(t, result, "extras.docs", "undeclared dependency")
	if issue == nil {
		t.Fatalf("undeclared-dependency error not found; got %v", result.Issues)
	}
	if issue.Severity != validator.SeverityError {
		t.Errorf("severity = %v, want error", issue.Severity)
	}
	if issue.Value != "ghost-package" {
		t.Errorf("value = %v", issue.Value)
	}
}

func TestValidate_ExtrasMemberNotOptional(t *testing.T) {
	m := valid()
	m.Extras["docs"] = []string{"loguru"}

	result := New().Validate(m)

	if findIssue(t, result, "extras.docs", "not marked optional") == nil {
		t.Errorf("expected warning for non-optional member; got %v", result.Issues)
	}
}

func TestValidate_OrphanedOptionalDependency(t *testing.T) {
	m := valid()
	m.Extras = nil

	result := New().Validate(m)

	if findIssue(t, result, "dependencies.mkdocs", "not referenced by any extras group") == nil {
		t.Errorf("expected warning for orphaned optional dep; got %v", result.Issues)
	}
}

func TestValidate_DuplicateAcrossGroups(t *testing.T) {
	m := valid()
	m.Dependencies = append(m.Dependencies,
		manifest.Dependency{Name: "loguru", Constraint: "^0.6", Group: manifest.GroupDev})

	result := New().Validate(m)

	if findIssue(t, result, "dependencies.loguru", "declared in both") == nil {
		t.Errorf("expected cross-group duplicate warning; got %v", result.Issues)
	}
}

func TestValidate_BuildSystem(t *testing.T) {
	t.Run("empty backend", func(t *testing.T) {
		m := valid()
		m.Build.Backend = "  "

		result := New().Validate(m)
		issue := findIssue(t, result, "build-system.build-backend", "must not be empty")
		if issue == nil || issue.Severity != validator.SeverityError {
			t.Errorf("expected backend error; got %v", result.Issues)
		}
	})

	t.Run("not declared", func(t *testing.T) {
		m := valid()
		m.Build = manifest.BuildSystem{}

		result := New().Validate(m)
		if result.HasErrors() {
			t.Errorf("missing table should not be an error: %v", result.Errors())
		}
		if findIssue(t, result, "build-system", "no build-system table") == nil {
			t.Errorf("expected missing-table warning; got %v", result.Issues)
		}
	})
}

func TestValidateWithPath(t *testing.T) {
	result := New().ValidateWithPath(valid(), "pyproject.toml")
	if result.Path != "pyproject.toml" {
		t.Errorf("Path = %q", result.Path)
	}
}
