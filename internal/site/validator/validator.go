// Package validator checks parsed site configurations: the site and theme
// names are non-empty, every plugin and markdown extension names a plugin,
// and nav entries reference pages that exist under the docs directory.
package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devx-cli/devx/internal/site"
	"github.com/devx-cli/devx/internal/validator"
)

// Validator validates site Config structs.
type Validator struct {
	// docsDir, when set, enables existence checks for nav page paths.
	docsDir string
}

// Option configures a Validator.
type Option func(*Validator)

// WithDocsDir enables nav page existence checks against the given directory.
func WithDocsDir(dir string) Option {
	return func(v *Validator) {
		v.docsDir = dir
	}
}

// New creates a new Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks a site configuration and returns the collected issues.
func (v *Validator) Validate(cfg *site.Config) *validator.Result {
	result := &validator.Result{}

	if strings.TrimSpace(cfg.SiteName) == "" {
		result.AddError("site_name", "site name must not be empty", nil)
	}

	if strings.TrimSpace(cfg.Theme.Name) == "" {
		result.AddError("theme.name", "theme name must not be empty", nil)
	}

	v.validateEntries("plugins", cfg.Plugins, result)
	v.validateEntries("markdown_extensions", cfg.MarkdownExtensions, result)
	v.validateAssets("extra_css", cfg.ExtraCSS, result)
	v.validateAssets("extra_javascript", cfg.ExtraJavascript, result)
	v.validateNav(cfg, result)

	return result
}

// ValidateWithPath validates a configuration and records the source path on the result.
func (v *Validator) ValidateWithPath(cfg *site.Config, path string) *validator.Result {
	result := v.Validate(cfg)
	result.Path = path
	return result
}

func (v *Validator) validateEntries(field string, entries []site.NamedEntry, result *validator.Result) {
	seen := make(map[string]bool)
	for i, entry := range entries {
		entryField := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(entry.Name) == "" {
			result.AddError(entryField, "entry name must not be empty", nil)
			continue
		}
		if seen[entry.Name] {
			result.AddWarning(entryField, "entry is declared more than once", entry.Name)
		}
		seen[entry.Name] = true
	}
}

func (v *Validator) validateAssets(field string, assets []string, result *validator.Result) {
	for i, asset := range assets {
		if strings.TrimSpace(asset) == "" {
			result.AddError(fmt.Sprintf("%s[%d]", field, i), "asset path must not be empty", nil)
		}
	}
}

func (v *Validator) validateNav(cfg *site.Config, result *validator.Result) {
	var walk func(field string, items []site.NavItem)
	walk = func(field string, items []site.NavItem) {
		for i, item := range items {
			itemField := fmt.Sprintf("%s[%d]", field, i)

			if item.Leaf() && strings.TrimSpace(item.Page) == "" {
				result.AddError(itemField, "nav entry must reference a page or carry children", item.Title)
				continue
			}

			if item.Page != "" && v.docsDir != "" {
				page := filepath.Join(v.docsDir, filepath.FromSlash(item.Page))
				if _, err := os.Stat(page); err != nil {
					result.AddWarning(itemField, "nav entry references a missing page", item.Page)
				}
			}

			walk(itemField+".children", item.Children)
		}
	}
	walk("nav", cfg.Nav)
}
