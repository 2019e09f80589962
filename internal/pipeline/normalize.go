package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// DefaultMaxBlankLines is the default bound on consecutive blank lines
// between content.
const DefaultMaxBlankLines = 2

// defaultBlankRun collapses newline runs for the default bound, precompiled
// for the common path.
var defaultBlankRun = regexp.MustCompile(`\n{4,}`)

// Normalize cleans up the document after all removal passes: it collapses
// excessive blank-line runs, strips trailing whitespace from every line,
// strips leading and trailing blank lines from the whole document, and
// appends exactly one trailing newline. It must run last, since removal
// leaves blank-line gaps where blocks and tables used to be.
//
// An empty or whitespace-only document normalizes to a single newline.
func Normalize(text string, maxBlank int) string {
	text = CollapseBlankLines(text, maxBlank)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	text = strings.Join(lines, "\n")

	return strings.Trim(text, "\n") + "\n"
}

// CollapseBlankLines collapses any run of maxBlank+2 or more consecutive
// newlines down to exactly maxBlank+1, leaving at most maxBlank blank lines
// between content. Lines holding only spaces or tabs do not join a newline
// run; they are handled by the trailing-whitespace strip afterwards.
func CollapseBlankLines(text string, maxBlank int) string {
	pattern := defaultBlankRun
	if maxBlank != DefaultMaxBlankLines {
		pattern = regexp.MustCompile(fmt.Sprintf(`\n{%d,}`, maxBlank+2))
	}
	return pattern.ReplaceAllString(text, strings.Repeat("\n", maxBlank+1))
}
