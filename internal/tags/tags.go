// Package tags collects tagged source comments (TODO, FIXME, and friends)
// from a project tree and renders them into a single review summary.
package tags

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devx-cli/devx/internal/errors"
)

// DefaultTags are the tag names recognized out of the box.
var DefaultTags = []string{"DEBUG", "FIXME", "FYI", "HACK", "NOTE", "PLANNED", "REVIEW", "TBD", "TODO"}

// SkipMarker opts a file out of tag collection when it appears within
// the first few lines.
const SkipMarker = ":skip_tags:"

// skipMarkerWindow is how many leading lines are checked for SkipMarker.
const skipMarkerWindow = 4

// TaggedComment is a single tag match with its location.
type TaggedComment struct {
	Line int    `json:"line"`
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// FileTags groups the tagged comments found in one file.
type FileTags struct {
	// Path is relative to the scanned root, slash-separated.
	Path     string          `json:"path"`
	Comments []TaggedComment `json:"comments"`
}

// CompileMatcher builds the tag-matching expression for the given tag
// names. The tag must follow whitespace or an opening paren and be
// terminated by a colon.
func CompileMatcher(names []string) (*regexp.Regexp, error) {
	if len(names) == 0 {
		return nil, errors.New("no tag names given")
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("tag names must not be empty")
		}
	}

	pattern := fmt.Sprintf(`((\s|\()(?P<tag>%s)(:[^\r\n]))(?P<text>.+)`, strings.Join(names, "|"))
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "compiling tag pattern")
	}
	return re, nil
}

// SearchLines scans lines for tag matches. A SkipMarker within the
// leading lines stops the scan for the whole file.
func SearchLines(lines []string, matcher *regexp.Regexp) []TaggedComment {
	tagIdx := matcher.SubexpIndex("tag")
	textIdx := matcher.SubexpIndex("text")

	var comments []TaggedComment
	for i, line := range lines {
		if i < skipMarkerWindow && strings.Contains(line, SkipMarker) {
			break
		}
		m := matcher.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		comments = append(comments, TaggedComment{
			Line: i + 1,
			Tag:  m[tagIdx],
			Text: m[textIdx],
		})
	}
	return comments
}
