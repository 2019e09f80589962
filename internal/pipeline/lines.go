package pipeline

import "strings"

// The detectors operate on a line-document model: lines are the slices
// produced by strings.Split(text, "\n"), so splitting and re-joining
// round-trips the text exactly. Line i carries a trailing newline in the
// original text iff it is not the last slice element.

// regionMatcher inspects lines starting at index i and reports the inclusive
// end index of a region opening there, or ok=false when no region starts at i.
type regionMatcher func(lines []string, i int) (end int, ok bool)

// removeRegions scans the document for non-overlapping regions in order,
// removes each one, and records its verbatim text (lines joined by "\n").
// Scanning resumes after the end of each removed region, so regions never
// overlap and untouched lines keep their relative order.
//
// keepGapLine selects the removal semantics:
//   - true: the region's closing line keeps its trailing newline, so removal
//     leaves one empty line where the region was (fenced code blocks).
//   - false: the region is consumed including the trailing newline of its
//     last line, so removal leaves no gap (pipe tables). Matchers used this
//     way must only consume newline-terminated lines.
func removeRegions(text string, match regionMatcher, keepGapLine bool) (string, []string) {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	var removed []string

	i := 0
	for i < len(lines) {
		end, ok := match(lines, i)
		if !ok {
			out = append(out, lines[i])
			i++
			continue
		}
		removed = append(removed, strings.Join(lines[i:end+1], "\n"))
		if keepGapLine {
			out = append(out, "")
		}
		i = end + 1
	}

	return strings.Join(out, "\n"), removed
}

// terminated reports whether line i carries a trailing newline in the
// original text.
func terminated(lines []string, i int) bool {
	return i < len(lines)-1
}

// isBlank reports whether the line is empty or contains only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
