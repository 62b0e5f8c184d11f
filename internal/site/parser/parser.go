// Package parser loads documentation-site configurations from YAML.
package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/site"
)

// ErrInvalidYAML indicates the input is not valid YAML or does not match
// the site configuration schema.
var ErrInvalidYAML = errors.New("invalid YAML")

// ParseError wraps errors that occur during parsing with path context.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parsing site config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parsing site config: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a site configuration from YAML bytes.
func Parse(data []byte) (*site.Config, error) {
	var cfg site.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalidYAML, "%v", err)
	}

	return &cfg, nil
}

// ParseFile reads a site configuration from a file path.
func ParseFile(path string) (*site.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Mark(err, errors.ErrNotFound)
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return cfg, nil
}
