package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devx-cli/devx/internal/errors"
)

const sampleConfig = `
site_name: Demo Docs
site_url: https://example.com/demo
theme:
  name: material
  palette:
    scheme: slate
plugins:
  - search
  - minify:
      minify_html: true
markdown_extensions:
  - admonition
  - toc:
      permalink: true
nav:
  - index.md
  - User Guide:
      - guide/install.md
      - guide/usage.md
  - About: about.md
docs_dir: docs
extra_css:
  - css/custom.css
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.SiteName != "Demo Docs" {
		t.Errorf("SiteName = %q", cfg.SiteName)
	}

	if cfg.Theme.Name != "material" {
		t.Errorf("Theme.Name = %q", cfg.Theme.Name)
	}
	if _, ok := cfg.Theme.Options["palette"]; !ok {
		t.Errorf("Theme.Options = %v", cfg.Theme.Options)
	}

	if len(cfg.Plugins) != 2 {
		t.Fatalf("len(Plugins) = %d, want 2", len(cfg.Plugins))
	}
	if cfg.Plugins[0].Name != "search" || cfg.Plugins[0].Options != nil {
		t.Errorf("Plugins[0] = %+v", cfg.Plugins[0])
	}
	if cfg.Plugins[1].Name != "minify" {
		t.Errorf("Plugins[1] = %+v", cfg.Plugins[1])
	}
	if v, ok := cfg.Plugins[1].Options["minify_html"].(bool); !ok || !v {
		t.Errorf("Plugins[1].Options = %v", cfg.Plugins[1].Options)
	}

	if len(cfg.MarkdownExtensions) != 2 {
		t.Errorf("MarkdownExtensions = %+v", cfg.MarkdownExtensions)
	}

	if len(cfg.Nav) != 3 {
		t.Fatalf("len(Nav) = %d, want 3", len(cfg.Nav))
	}
	if cfg.Nav[0].Page != "index.md" || !cfg.Nav[0].Leaf() {
		t.Errorf("Nav[0] = %+v", cfg.Nav[0])
	}
	guide := cfg.Nav[1]
	if guide.Title != "User Guide" || len(guide.Children) != 2 {
		t.Errorf("Nav[1] = %+v", guide)
	}
	if cfg.Nav[2].Title != "About" || cfg.Nav[2].Page != "about.md" {
		t.Errorf("Nav[2] = %+v", cfg.Nav[2])
	}

	pages := cfg.Pages()
	want := []string{"index.md", "guide/install.md", "guide/usage.md", "about.md"}
	if len(pages) != len(want) {
		t.Fatalf("Pages() = %v, want %v", pages, want)
	}
	for i := range want {
		if pages[i] != want[i] {
			t.Errorf("Pages()[%d] = %q, want %q", i, pages[i], want[i])
		}
	}
}

func TestParse_ScalarTheme(t *testing.T) {
	cfg, err := Parse([]byte("site_name: Demo\ntheme: readthedocs\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme.Name != "readthedocs" {
		t.Errorf("Theme.Name = %q", cfg.Theme.Name)
	}
	if cfg.Theme.Options != nil {
		t.Errorf("Theme.Options = %v", cfg.Theme.Options)
	}
}

func TestParse_NullPluginOptions(t *testing.T) {
	cfg, err := Parse([]byte("site_name: Demo\ntheme: material\nplugins:\n  - search:\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Plugins) != 1 || cfg.Plugins[0].Name != "search" {
		t.Errorf("Plugins = %+v", cfg.Plugins)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("site_name: [unclosed"))
	if !errors.Is(err, ErrInvalidYAML) {
		t.Fatalf("expected ErrInvalidYAML, got %v", err)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mkdocs.yml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if cfg.SiteName != "Demo Docs" {
		t.Errorf("SiteName = %q", cfg.SiteName)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "mkdocs.yml"))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("missing file should match ErrNotFound, got %v", err)
	}
}
