package tags

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devx-cli/devx/internal/paths"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestScanner_Scan(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":            "# Demo\n\n- TODO: write the quickstart\n",
		"pkg/runner.go":        "package runner\n\n// FIXME: propagate context\n",
		"docs/skip.md":         "<!-- :skip_tags: -->\n\n- TODO: ignored\n",
		".git/config.md":       "- TODO: never scanned\n",
		"vendor/dep/lib.go":    "// TODO: never scanned\n",
		"notes.txt":            "- TODO: wrong suffix\n",
		paths.DefaultTagSummary: "- TODO: the summary itself is skipped\n",
	})

	scanner, err := NewScanner(root)
	if err != nil {
		t.Fatal(err)
	}

	matches, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("got %d files: %+v", len(matches), matches)
	}
	if matches[0].Path != "README.md" || matches[1].Path != "pkg/runner.go" {
		t.Errorf("unexpected paths: %q, %q", matches[0].Path, matches[1].Path)
	}
	if matches[0].Comments[0].Tag != "TODO" || matches[1].Comments[0].Tag != "FIXME" {
		t.Errorf("unexpected tags: %+v", matches)
	}
}

func TestScanner_CustomTagsAndSuffixes(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.rs":   "// WIP: port the parser\n",
		"README.md": "- TODO: not collected with custom tags\n",
	})

	scanner, err := NewScanner(root,
		WithSuffixes([]string{".rs"}),
		WithTags([]string{"WIP"}),
	)
	if err != nil {
		t.Fatal(err)
	}

	matches, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(matches) != 1 || matches[0].Path != "main.rs" {
		t.Fatalf("got %+v", matches)
	}
	if matches[0].Comments[0].Tag != "WIP" {
		t.Errorf("Tag = %q", matches[0].Comments[0].Tag)
	}
}

func TestNewScanner_InvalidTagNames(t *testing.T) {
	_, err := NewScanner(t.TempDir(), WithTags([]string{"CUSTOM("}))
	if err == nil {
		t.Fatal("expected error for a tag name that breaks the matcher")
	}
	if !strings.Contains(err.Error(), "invalid tag names") {
		t.Errorf("error = %v", err)
	}
}

func TestScanner_IgnoreDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"build/out.md": "- TODO: generated output\n",
		"src/lib.md":   "- TODO: keep this one\n",
	})

	scanner, err := NewScanner(root, WithIgnoreDirs([]string{"build"}))
	if err != nil {
		t.Fatal(err)
	}

	matches, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(matches) != 1 || matches[0].Path != "src/lib.md" {
		t.Fatalf("got %+v", matches)
	}
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), paths.DefaultTagSummary)

	collection := []FileTags{
		{Path: "a.md", Comments: []TaggedComment{{Line: 1, Tag: "TODO", Text: "one"}}},
	}

	written, err := WriteSummary(path, collection)
	if err != nil {
		t.Fatal(err)
	}
	if !written {
		t.Fatal("expected summary to be written")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# Task Summary\n") {
		t.Errorf("missing header:\n%s", content)
	}
	if !strings.Contains(content, "a.md\n") || !strings.HasSuffix(content, "```\n") {
		t.Errorf("unexpected content:\n%s", content)
	}

	// An empty collection removes the stale summary.
	written, err = WriteSummary(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if written {
		t.Error("expected summary to be removed")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("summary file still present: %v", err)
	}
}
