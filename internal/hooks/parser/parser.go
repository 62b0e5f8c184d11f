// Package parser loads hook pipeline definitions from YAML.
package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/hooks"
)

// ErrInvalidYAML indicates the input is not valid YAML or does not match
// the pipeline schema.
var ErrInvalidYAML = errors.New("invalid YAML")

// ParseError wraps errors that occur during parsing with path context.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parsing hook pipeline %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parsing hook pipeline: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a hook pipeline from YAML bytes.
// yaml.v3 reports line numbers in its own error strings; we keep them intact.
func Parse(data []byte) (*hooks.Pipeline, error) {
	var p hooks.Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, errors.Wrapf(ErrInvalidYAML, "%v", typeErr)
		}
		return nil, errors.Wrapf(ErrInvalidYAML, "%v", err)
	}

	return &p, nil
}

// ParseFile reads a hook pipeline from a file path.
func ParseFile(path string) (*hooks.Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Mark(err, errors.ErrNotFound)
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	p, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return p, nil
}
