package tags

import (
	"fmt"
	"os"
	"strings"

	"github.com/devx-cli/devx/pkg/fileutil"
)

// FormatReport renders the collected tags grouped by file, with a
// per-tag count line at the end. An empty collection renders as "".
func FormatReport(collection []FileTags) string {
	var b strings.Builder

	counts := make(map[string]int)
	var order []string

	for _, ft := range collection {
		fmt.Fprintf(&b, "%s\n", ft.Path)
		for _, c := range ft.Comments {
			fmt.Fprintf(&b, "    line %3d %7s: %s\n", c.Line, c.Tag, c.Text)
			if counts[c.Tag] == 0 {
				order = append(order, c.Tag)
			}
			counts[c.Tag]++
		}
		b.WriteString("\n")
	}

	if len(order) > 0 {
		parts := make([]string, 0, len(order))
		for _, tag := range order {
			parts = append(parts, fmt.Sprintf("%s (%d)", tag, counts[tag]))
		}
		fmt.Fprintf(&b, "Found tagged comments for %s\n", strings.Join(parts, ",  "))
	}

	return b.String()
}

// summaryHeader opens the generated summary file.
const summaryHeader = "# Task Summary\n\nAuto-Generated by devx\n\n```log\n"

// WriteSummary writes the formatted report to path, or removes the file
// when nothing was collected. It reports whether a summary file exists
// after the call.
func WriteSummary(path string, collection []FileTags) (bool, error) {
	report := FormatReport(collection)
	if strings.TrimSpace(report) == "" {
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	if err := fileutil.AtomicWriteText(path, summaryHeader+report+"```"); err != nil {
		return false, err
	}
	return true, nil
}
