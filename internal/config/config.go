// Package config provides configuration management for devx using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/devx-cli/devx/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "devx"

// Config represents the top-level configuration structure.
type Config struct {
	Version int         `mapstructure:"version" yaml:"version"`
	Files   FilesConfig `mapstructure:"files" yaml:"files"`
	Tags    TagsConfig  `mapstructure:"tags" yaml:"tags"`
}

// FilesConfig overrides the default locations of the checked files.
type FilesConfig struct {
	Manifest string `mapstructure:"manifest" yaml:"manifest"`
	Hooks    string `mapstructure:"hooks" yaml:"hooks"`
	Site     string `mapstructure:"site" yaml:"site"`
	DocsDir  string `mapstructure:"docs_dir" yaml:"docs_dir"`
}

// TagsConfig tunes the tagged-comment scanner.
type TagsConfig struct {
	// Names are the recognized tag names; empty means the defaults.
	Names []string `mapstructure:"names" yaml:"names"`

	// Suffixes are the scanned file suffixes; empty means the defaults.
	Suffixes []string `mapstructure:"suffixes" yaml:"suffixes"`

	// IgnoreDirs are directory names skipped during the scan.
	IgnoreDirs []string `mapstructure:"ignore_dirs" yaml:"ignore_dirs"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName(".devx")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	viper.SetEnvPrefix("DEVX")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("files.manifest", paths.DefaultManifest)
	viper.SetDefault("files.hooks", paths.DefaultHooks)
	viper.SetDefault("files.site", paths.DefaultSite)
	viper.SetDefault("files.docs_dir", paths.DefaultDocsDir)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Absent config is only an error when the user named a file.
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
