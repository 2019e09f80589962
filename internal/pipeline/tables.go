package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled line shapes for pipe table detection.
var (
	// Strict row: leading and trailing pipe, optional trailing whitespace.
	strictTableRow = regexp.MustCompile(`^\|[^\n]*\|[ \t]*$`)

	// Strict separator: pipes enclosing dashes, colons, pipes and whitespace,
	// with at least one dash.
	strictTableSep = regexp.MustCompile(`^\|[ \t:]*-[-| \t:]*\|[ \t]*$`)

	// Loose separator: dashes, colons, pipes and whitespace with a dash on
	// each side of the content.
	looseTableSep = regexp.MustCompile(`^[ \t:]*-[-| \t:]*-[ \t:]*$`)
)

// RemoveStrictTables removes pipe tables whose rows begin and end with a
// pipe: a header row, a separator row, and zero or more body rows, consumed
// greedily until the first line that does not match the row shape. The
// detector checks line shapes only; it does not validate that column counts
// are consistent across rows.
//
// Every consumed line must be newline-terminated, so a final row at end of
// document with no trailing newline is left behind in the text.
func RemoveStrictTables(text string) (string, []string) {
	return removeRegions(text, matchStrictTable, false)
}

// RemoveLooseTables removes pipe tables without leading/trailing pipes:
// a header line containing at least one pipe, a dash separator line, and
// zero or more body lines each containing a pipe. It runs after the strict
// detector, so it only sees constructs the strict detector left behind.
//
// The relaxed shape can false-positive on non-table content where a line
// containing a pipe is followed by a dash-only line. That imprecision is a
// deliberate recall trade-off and must not be special-cased away.
func RemoveLooseTables(text string) (string, []string) {
	return removeRegions(text, matchLooseTable, false)
}

func matchStrictTable(lines []string, i int) (int, bool) {
	if !terminated(lines, i) || !strictTableRow.MatchString(lines[i]) {
		return 0, false
	}
	sep := i + 1
	if !terminated(lines, sep) || !strictTableSep.MatchString(lines[sep]) {
		return 0, false
	}

	end := sep
	for j := sep + 1; terminated(lines, j) && strictTableRow.MatchString(lines[j]); j++ {
		end = j
	}
	return end, true
}

func matchLooseTable(lines []string, i int) (int, bool) {
	if !terminated(lines, i) || !strings.Contains(lines[i], "|") {
		return 0, false
	}
	sep := i + 1
	if !terminated(lines, sep) || !looseTableSep.MatchString(lines[sep]) {
		return 0, false
	}

	end := sep
	for j := sep + 1; terminated(lines, j) && strings.Contains(lines[j], "|"); j++ {
		end = j
	}
	return end, true
}
