package pipeline

import (
	"regexp"
	"strings"
)

// fenceOpen matches the maximal leading run of backticks or tildes that
// opens a fenced code block. Anything after the run on the same line is
// treated as a language tag.
var fenceOpen = regexp.MustCompile("^(`{3,}|~{3,})")

// RemoveFencedBlocks removes fenced code blocks (backtick or tilde fences,
// with or without a language tag) and returns the cleaned text plus the
// removed blocks verbatim, delimiters included.
//
// A block is opened by a line starting with a run of at least three
// identical fence characters and closed by the first later line holding a
// run of the same character at least as long, followed only by spaces or
// tabs. Backtick fences are never closed by tilde fences. An opening fence
// with no closing fence matches nothing: the fence line and everything
// after it stay in the text as ordinary content.
func RemoveFencedBlocks(text string) (string, []string) {
	return removeRegions(text, matchFencedBlock, true)
}

// matchFencedBlock reports the inclusive end of a fenced block opening at
// line i, scanning forward for the first valid closing fence.
func matchFencedBlock(lines []string, i int) (int, bool) {
	open := fenceOpen.FindString(lines[i])
	if open == "" {
		return 0, false
	}

	marker := open[0]
	for j := i + 1; j < len(lines); j++ {
		if isClosingFence(lines[j], marker, len(open)) {
			return j, true
		}
	}
	return 0, false
}

// isClosingFence reports whether the line is a run of at least minLen
// marker characters followed only by spaces or tabs.
func isClosingFence(line string, marker byte, minLen int) bool {
	run := 0
	for run < len(line) && line[run] == marker {
		run++
	}
	if run < minLen {
		return false
	}
	return strings.TrimRight(line[run:], " \t") == ""
}
