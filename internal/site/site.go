// Package site defines the documentation-site generator configuration model.
//
// A site configuration names the theme and its rendering options, the
// enabled plugins, the markdown extension list, the nav tree, and static
// asset paths. devx validates the configuration; rendering the site is the
// generator's job.
package site

import (
	"github.com/devx-cli/devx/internal/errors"
	"gopkg.in/yaml.v3"
)

// Config is the parsed site configuration.
type Config struct {
	// SiteName is the rendered site title.
	SiteName string `json:"site_name" yaml:"site_name"`

	// SiteURL is the canonical URL, when published.
	SiteURL string `json:"site_url,omitempty" yaml:"site_url"`

	// Theme names the theme and carries its rendering options.
	Theme Theme `json:"theme" yaml:"theme"`

	// Plugins lists the enabled plugins.
	Plugins []NamedEntry `json:"plugins,omitempty" yaml:"plugins"`

	// MarkdownExtensions lists the enabled markdown extensions.
	MarkdownExtensions []NamedEntry `json:"markdown_extensions,omitempty" yaml:"markdown_extensions"`

	// Nav is the navigation tree.
	Nav []NavItem `json:"nav,omitempty" yaml:"nav"`

	// DocsDir overrides the documentation source directory.
	DocsDir string `json:"docs_dir,omitempty" yaml:"docs_dir"`

	// ExtraCSS lists static stylesheet paths.
	ExtraCSS []string `json:"extra_css,omitempty" yaml:"extra_css"`

	// ExtraJavascript lists static script paths.
	ExtraJavascript []string `json:"extra_javascript,omitempty" yaml:"extra_javascript"`
}

// Theme is the theme entry: a name plus a mapping of rendering options.
// In YAML it is written either as a bare name or as a mapping with a
// "name" key and arbitrary option keys.
type Theme struct {
	Name    string         `json:"name"`
	Options map[string]any `json:"options,omitempty"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (t *Theme) UnmarshalYAML(value *yaml.Node) error {
	name, options, err := decodeNamed(value)
	if err != nil {
		return errors.Wrap(err, "decoding theme")
	}
	t.Name = name
	t.Options = options
	return nil
}

// NamedEntry is a plugin or markdown extension entry: either a bare name
// or a single-key mapping from name to an options mapping.
type NamedEntry struct {
	Name    string         `json:"name"`
	Options map[string]any `json:"options,omitempty"`
}

// UnmarshalYAML accepts both the scalar and the single-key mapping form.
func (e *NamedEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&e.Name)
	}

	if value.Kind == yaml.MappingNode && len(value.Content) == 2 {
		if err := value.Content[0].Decode(&e.Name); err != nil {
			return errors.Wrap(err, "decoding entry name")
		}
		// A null body ("- search:") is allowed and means no options.
		if value.Content[1].Tag == "!!null" {
			return nil
		}
		if err := value.Content[1].Decode(&e.Options); err != nil {
			return errors.Wrap(err, "decoding entry options")
		}
		return nil
	}

	return errors.New("entry must be a name or a single-key mapping")
}

// NavItem is one node of the navigation tree. A leaf references a page
// path; a section carries a title and children.
type NavItem struct {
	// Title is the display title; empty for bare page paths.
	Title string `json:"title,omitempty"`

	// Page is the page path for leaf entries.
	Page string `json:"page,omitempty"`

	// Children holds nested entries for section nodes.
	Children []NavItem `json:"children,omitempty"`
}

// Leaf reports whether the item references a page rather than a section.
func (n NavItem) Leaf() bool {
	return len(n.Children) == 0
}

// UnmarshalYAML accepts the three nav entry shapes: a bare page path,
// "Title: page.md", and "Title: [nested entries]".
func (n *NavItem) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&n.Page)
	}

	if value.Kind == yaml.MappingNode && len(value.Content) == 2 {
		if err := value.Content[0].Decode(&n.Title); err != nil {
			return errors.Wrap(err, "decoding nav title")
		}
		body := value.Content[1]
		if body.Kind == yaml.SequenceNode {
			return body.Decode(&n.Children)
		}
		return body.Decode(&n.Page)
	}

	return errors.New("nav entry must be a page path or a single-key mapping")
}

// decodeNamed decodes a scalar-or-mapping node into a name and options.
func decodeNamed(value *yaml.Node) (string, map[string]any, error) {
	if value.Kind == yaml.ScalarNode {
		var name string
		err := value.Decode(&name)
		return name, nil, err
	}

	var all map[string]any
	if err := value.Decode(&all); err != nil {
		return "", nil, err
	}

	name, _ := all["name"].(string)
	delete(all, "name")
	if len(all) == 0 {
		return name, nil, nil
	}
	return name, all, nil
}

// Pages returns all page paths referenced by the nav tree, depth-first.
func (c *Config) Pages() []string {
	var out []string
	var walk func(items []NavItem)
	walk = func(items []NavItem) {
		for _, item := range items {
			if item.Page != "" {
				out = append(out, item.Page)
			}
			walk(item.Children)
		}
	}
	walk(c.Nav)
	return out
}
