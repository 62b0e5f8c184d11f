package tags

import (
	"context"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/internal/logging"
	"github.com/devx-cli/devx/internal/paths"
	"github.com/devx-cli/devx/pkg/fileutil"
)

// DefaultSuffixes are the file suffixes scanned when none are configured.
var DefaultSuffixes = []string{".go", ".md", ".py"}

// defaultConcurrency bounds how many files are read at once.
const defaultConcurrency = 8

// Scanner walks a project tree and collects tagged comments.
type Scanner struct {
	root     string
	suffixes []string
	ignores  map[string]bool
	matcher  *regexp.Regexp
	optErr   error
}

// ScanOption configures a Scanner.
type ScanOption func(*Scanner)

// WithSuffixes overrides the scanned file suffixes.
func WithSuffixes(suffixes []string) ScanOption {
	return func(s *Scanner) {
		if len(suffixes) > 0 {
			s.suffixes = suffixes
		}
	}
}

// WithIgnoreDirs adds directory names that are skipped wholesale.
func WithIgnoreDirs(names []string) ScanOption {
	return func(s *Scanner) {
		for _, name := range names {
			s.ignores[name] = true
		}
	}
}

// WithTags overrides the recognized tag names. A tag list that does not
// compile into a matcher fails the NewScanner call.
func WithTags(names []string) ScanOption {
	return func(s *Scanner) {
		re, err := CompileMatcher(names)
		if err != nil {
			s.optErr = errors.Wrap(err, "invalid tag names")
			return
		}
		s.matcher = re
	}
}

// NewScanner creates a Scanner rooted at the given directory.
func NewScanner(root string, opts ...ScanOption) (*Scanner, error) {
	matcher, err := CompileMatcher(DefaultTags)
	if err != nil {
		return nil, err
	}

	s := &Scanner{
		root:     root,
		suffixes: DefaultSuffixes,
		ignores: map[string]bool{
			"node_modules": true,
			"vendor":       true,
		},
		matcher: matcher,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.optErr != nil {
		return nil, s.optErr
	}
	return s, nil
}

// Scan walks the tree and returns the tagged comments grouped by file,
// sorted by path. Files are read concurrently.
func (s *Scanner) Scan(ctx context.Context) ([]FileTags, error) {
	files, err := s.findFiles()
	if err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	log.Debug("scanning for tagged comments", "root", s.root, "files", len(files))

	var (
		mu      sync.Mutex
		matches []FileTags
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultConcurrency)

	for _, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := fileutil.ReadFileWithLimit(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			if !utf8.Valid(data) {
				log.Warn("skipping file with invalid encoding", "path", path)
				return nil
			}

			comments := SearchLines(splitLines(string(data)), s.matcher)
			if len(comments) == 0 {
				return nil
			}

			rel, err := filepath.Rel(s.root, path)
			if err != nil {
				rel = path
			}

			mu.Lock()
			matches = append(matches, FileTags{
				Path:     filepath.ToSlash(rel),
				Comments: comments,
			})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Path < matches[j].Path
	})
	return matches, nil
}

// findFiles selects the files to scan, skipping dot directories,
// ignored directories, and the summary file itself.
func (s *Scanner) findFiles() ([]string, error) {
	var out []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path == s.root {
				return nil
			}
			if strings.HasPrefix(name, ".") || s.ignores[name] {
				return fs.SkipDir
			}
			return nil
		}

		if name == paths.DefaultTagSummary {
			return nil
		}
		for _, suffix := range s.suffixes {
			if strings.HasSuffix(name, suffix) {
				out = append(out, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", s.root)
	}
	return out, nil
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
