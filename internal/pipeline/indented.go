package pipeline

import "strings"

// RemoveIndentedBlocks removes indented code blocks (lines indented by at
// least four spaces or a leading tab) and returns the cleaned text plus the
// removed blocks verbatim.
//
// Indentation-based blocks cannot be matched by a single pattern: blank
// lines inside a block belong to it, while blank lines trailing a block do
// not, and telling them apart needs sequential state. This is a two-state
// line scan:
//
//   - outside -> inside: the current line is indented and either no line has
//     been emitted yet or the most recently emitted line is blank. An
//     indented line directly after ordinary text never starts a block.
//   - inside -> outside: the current line is neither indented nor blank.
//     Blank lines buffered at the end of the block are pushed back to the
//     output as ordinary blank lines, and the rest of the buffer is flushed
//     as one removed block.
//
// End of document while inside a block applies the same trailing-blank
// trimming and flush.
func RemoveIndentedBlocks(text string) (string, []string) {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	var removed []string
	var buffer []string
	inBlock := false

	for _, line := range lines {
		indented := strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")

		if inBlock {
			if indented || isBlank(line) {
				buffer = append(buffer, line)
				continue
			}
			result, removed = flushIndentedBlock(buffer, result, removed)
			buffer = nil
			inBlock = false
			result = append(result, line)
			continue
		}

		if indented && (len(result) == 0 || isBlank(result[len(result)-1])) {
			inBlock = true
			buffer = append(buffer, line)
			continue
		}
		result = append(result, line)
	}

	if len(buffer) > 0 {
		result, removed = flushIndentedBlock(buffer, result, removed)
	}

	return strings.Join(result, "\n"), removed
}

// flushIndentedBlock returns trailing blank lines from buffer to the output,
// then records the remaining lines as one removed block.
func flushIndentedBlock(buffer, result, removed []string) ([]string, []string) {
	for len(buffer) > 0 && isBlank(buffer[len(buffer)-1]) {
		result = append(result, buffer[len(buffer)-1])
		buffer = buffer[:len(buffer)-1]
	}
	if len(buffer) > 0 {
		removed = append(removed, strings.Join(buffer, "\n"))
	}
	return result, removed
}
