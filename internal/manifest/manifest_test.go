package manifest

import (
	"testing"

	"github.com/devx-cli/devx/internal/errors"
)

func TestCheckConstraint(t *testing.T) {
	for _, constraint := range []string{"^1.2", ">=0.5,<1.0", "~2.0.1", "*"} {
		if err := CheckConstraint(constraint); err != nil {
			t.Errorf("CheckConstraint(%q) = %v", constraint, err)
		}
	}

	for _, constraint := range []string{"", "not a constraint", "^^1.0"} {
		err := CheckConstraint(constraint)
		if err == nil {
			t.Errorf("CheckConstraint(%q) should fail", constraint)
			continue
		}
		if !errors.Is(err, errors.ErrInvalidConstraint) {
			t.Errorf("CheckConstraint(%q) should match ErrInvalidConstraint, got %v", constraint, err)
		}
	}
}

func TestManifest_Dependency(t *testing.T) {
	m := &Manifest{
		Dependencies: []Dependency{
			{Name: "requests", Group: GroupMain},
			{Name: "pytest", Group: GroupDev},
		},
	}

	if dep := m.Dependency("pytest"); dep == nil || dep.Group != GroupDev {
		t.Errorf("Dependency(pytest) = %+v", dep)
	}
	if m.Dependency("absent") != nil {
		t.Error("Dependency(absent) should be nil")
	}
	if got := m.Group(GroupMain); len(got) != 1 || got[0].Name != "requests" {
		t.Errorf("Group(main) = %+v", got)
	}
}
