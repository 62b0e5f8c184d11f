// Package project resolves the project the CLI commands operate on:
// the project root and the configured file locations within it.
package project

import (
	"os"
	"sync"

	"github.com/devx-cli/devx/internal/config"
	"github.com/devx-cli/devx/internal/paths"
)

// Context describes the located project.
type Context struct {
	// Root is the project root directory. When no manifest is found in
	// any parent directory, Root falls back to the working directory.
	Root string

	// Manifest, Hooks, and Site are absolute paths to the three
	// configuration files.
	Manifest string
	Hooks    string
	Site     string

	// DocsDir is the absolute path to the documentation source directory.
	DocsDir string

	// Tags carries the tag scanner settings.
	Tags config.TagsConfig
}

var (
	mu  sync.Mutex
	cfg *config.Config
)

// SetConfig stores the loaded configuration for later Locate calls.
// The root command calls this once during initialization.
func SetConfig(c *config.Config) {
	mu.Lock()
	defer mu.Unlock()
	cfg = c
}

// Locate resolves the project context from the working directory and the
// stored configuration.
func Locate() (*Context, error) {
	mu.Lock()
	c := cfg
	mu.Unlock()

	if c == nil {
		c = &config.Config{}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := paths.FindProjectRoot(wd)
	if err != nil {
		root = wd
	}

	return &Context{
		Root:     root,
		Manifest: paths.Resolve(root, orDefault(c.Files.Manifest, paths.DefaultManifest)),
		Hooks:    paths.Resolve(root, orDefault(c.Files.Hooks, paths.DefaultHooks)),
		Site:     paths.Resolve(root, orDefault(c.Files.Site, paths.DefaultSite)),
		DocsDir:  paths.Resolve(root, orDefault(c.Files.DocsDir, paths.DefaultDocsDir)),
		Tags:     c.Tags,
	}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
