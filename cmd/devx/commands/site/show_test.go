package site

import (
	"bytes"
	"strings"
	"testing"

	"github.com/devx-cli/devx/internal/site"
)

func TestOutputConfig(t *testing.T) {
	cfg := &site.Config{
		SiteName: "Demo Docs",
		SiteURL:  "https://example.com",
		Theme:    site.Theme{Name: "material"},
		Plugins: []site.NamedEntry{
			{Name: "search"},
			{Name: "minify", Options: map[string]any{"minify_html": true}},
		},
		MarkdownExtensions: []site.NamedEntry{
			{Name: "admonition"},
		},
		Nav: []site.NavItem{
			{Page: "index.md"},
			{Title: "Guide", Children: []site.NavItem{{Page: "guide/usage.md"}}},
		},
	}

	var buf bytes.Buffer
	outputConfig(&buf, cfg)

	out := buf.String()
	for _, fragment := range []string{
		"Demo Docs",
		"url:   https://example.com",
		"theme: material",
		"Plugins:",
		"minify (1 options)",
		"Markdown extensions:",
		"admonition",
		"Nav pages:",
		"guide/usage.md",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, out)
		}
	}
}

func TestValidateCommand_Metadata(t *testing.T) {
	if validateCmd.Use != "validate [path]" {
		t.Errorf("Use = %q", validateCmd.Use)
	}
	if validateCmd.Flags().Lookup("json") == nil {
		t.Error("--json flag should be defined")
	}
	if validateCmd.Flags().Lookup("docs-dir") == nil {
		t.Error("--docs-dir flag should be defined")
	}
}
