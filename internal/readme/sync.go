// Package readme keeps marked README sections in sync with the files
// they reference.
//
// A section is delimited by HTML comment markers:
//
//	<!-- CODE:tests/examples/demo.py -->
//	... replaced content ...
//	<!-- /CODE:tests/examples/demo.py -->
//
// Sync replaces the body of each section with the referenced file's
// contents in a fenced code block. Sections whose referenced file is
// missing are left untouched and reported.
package readme

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/devx-cli/devx/internal/errors"
	"github.com/devx-cli/devx/pkg/fileutil"
)

// markerPattern matches both the opening and closing section markers and
// captures the section key ("CODE:<path>").
var markerPattern = regexp.MustCompile(`^\s*<!-- (/?)(CODE:(.*?)) -->\s*$`)

// Result reports what Sync did.
type Result struct {
	// Updated lists the section keys whose bodies were replaced.
	Updated []string

	// Missing lists the section keys whose referenced file does not
	// exist; their bodies were left as-is.
	Missing []string

	// Changed reports whether the README content changed.
	Changed bool
}

// Sync rewrites the marked sections of the README at readmePath.
// Referenced paths are resolved relative to root. The file is only
// rewritten when a section body changed.
func Sync(readmePath, root string) (*Result, error) {
	data, err := fileutil.ReadFileWithLimit(readmePath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", readmePath)
	}

	original := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(original, "\n")

	result := &Result{}
	out := make([]string, 0, len(lines))
	skipping := false

	for _, line := range lines {
		m := markerPattern.FindStringSubmatch(line)
		if m == nil {
			if !skipping {
				out = append(out, line)
			}
			continue
		}

		closing := m[1] == "/"
		key, ref := m[2], m[3]

		if closing {
			out = append(out, line)
			skipping = false
			continue
		}

		out = append(out, line)
		body, err := embed(root, ref)
		if err != nil {
			result.Missing = append(result.Missing, key)
			continue
		}

		out = append(out, "")
		out = append(out, body...)
		out = append(out, "")
		result.Updated = append(result.Updated, key)
		skipping = true
	}

	if skipping {
		return nil, errors.Newf("unclosed section marker in %s", readmePath)
	}

	updated := strings.Join(out, "\n")
	if updated == original {
		return result, nil
	}

	if err := fileutil.AtomicWriteText(readmePath, updated); err != nil {
		return nil, errors.Wrapf(err, "writing %s", readmePath)
	}
	result.Changed = true
	return result, nil
}

// embed renders the referenced file as a fenced code block.
func embed(root, ref string) ([]string, error) {
	path := filepath.Join(root, filepath.FromSlash(ref))
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, err
	}

	content := strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	block := []string{"```" + fenceLanguage(ref)}
	for _, line := range strings.Split(content, "\n") {
		block = append(block, strings.TrimRight(line, " \t"))
	}
	block = append(block, "```")
	return block, nil
}

// fenceLanguage picks the fenced-block language tag from the file suffix.
func fenceLanguage(ref string) string {
	switch ext := filepath.Ext(ref); ext {
	case ".py":
		return "py"
	case ".go":
		return "go"
	case ".sh":
		return "sh"
	case ".yml", ".yaml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	case "":
		return ""
	default:
		return strings.TrimPrefix(ext, ".")
	}
}
