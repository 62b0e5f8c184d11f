package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/hooks"
)

const samplePipeline = `
default_stages: [commit]
repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.0.1
    hooks:
      - id: trailing-whitespace
      - id: check-yaml
        args: ["--allow-multiple-documents"]
        stages: [commit, push]
  - repo: local
    hooks:
      - id: lint
        name: Run linter
        entry: make lint
        language: system
        files: '\.py$'
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(samplePipeline))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(p.Repos) != 2 {
		t.Fatalf("len(Repos) = %d, want 2", len(p.Repos))
	}
	if got := p.DefaultStages; len(got) != 1 || got[0] != "commit" {
		t.Errorf("DefaultStages = %v", got)
	}

	remote := p.Repos[0]
	if !remote.Remote() {
		t.Error("first repo should be remote")
	}
	if remote.Rev != "v4.0.1" {
		t.Errorf("Rev = %q", remote.Rev)
	}
	if len(remote.Hooks) != 2 {
		t.Fatalf("len(Hooks) = %d, want 2", len(remote.Hooks))
	}
	checkYaml := remote.Hooks[1]
	if checkYaml.ID != "check-yaml" {
		t.Errorf("ID = %q", checkYaml.ID)
	}
	if len(checkYaml.Args) != 1 || checkYaml.Args[0] != "--allow-multiple-documents" {
		t.Errorf("Args = %v", checkYaml.Args)
	}
	if len(checkYaml.Stages) != 2 {
		t.Errorf("Stages = %v", checkYaml.Stages)
	}

	local := p.Repos[1]
	if local.Remote() {
		t.Error("local repo should not be remote")
	}
	if local.Hooks[0].Entry != "make lint" {
		t.Errorf("Entry = %q", local.Hooks[0].Entry)
	}

	if got := p.HookCount(); got != 3 {
		t.Errorf("HookCount() = %d, want 3", got)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("repos:\n  - repo: [unclosed"))
	if !errors.Is(err, ErrInvalidYAML) {
		t.Fatalf("expected ErrInvalidYAML, got %v", err)
	}
}

func TestParse_WrongShape(t *testing.T) {
	// repos as a scalar instead of a sequence
	_, err := Parse([]byte("repos: 42\n"))
	if !errors.Is(err, ErrInvalidYAML) {
		t.Fatalf("expected ErrInvalidYAML, got %v", err)
	}
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if len(p.Repos) != 0 {
		t.Errorf("Repos = %v", p.Repos)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".pre-commit-config.yaml")
	if err := os.WriteFile(path, []byte(samplePipeline), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(p.Repos) != 2 {
		t.Errorf("len(Repos) = %d", len(p.Repos))
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml"))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("missing file should match ErrNotFound, got %v", err)
	}
}

func TestKnownStage(t *testing.T) {
	for _, stage := range hooks.Stages {
		if !hooks.KnownStage(stage) {
			t.Errorf("KnownStage(%q) = false", stage)
		}
	}
	if hooks.KnownStage("pre-lunch") {
		t.Error(`KnownStage("pre-lunch") = true`)
	}
}
