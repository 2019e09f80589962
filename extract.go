package mdsnap

import "github.com/alnah/go-mdsnap/internal/pipeline"

// Extractor removes code blocks and pipe tables from Markdown documents.
// It holds no state between calls; one Extractor is safe for concurrent use
// and a zero-configuration extraction is available through Extract.
type Extractor struct {
	maxBlankLines int
}

// NewExtractor creates an Extractor with default configuration.
// Use options to customize behavior (e.g., WithMaxBlankLines).
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{maxBlankLines: pipeline.DefaultMaxBlankLines}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the default pipeline on content. Shorthand for
// NewExtractor().Extract(content).
func Extract(content string) *ExtractResult {
	return NewExtractor().Extract(content)
}

// Extract removes all code blocks and tables from content and returns the
// cleaned text along with the removed fragments.
//
// Stages run in a fixed order; each consumes the previous stage's output:
//
//  1. Fenced code blocks (backtick and tilde fences)
//  2. Indented code blocks (4 spaces / tab)
//  3. Pipe tables (strict format with leading/trailing pipes)
//  4. Pipe tables (loose format without leading/trailing pipes)
//  5. Blank-line normalization
//
// Code fences go first so that table-shaped lines inside a fence are never
// treated as tables; the loose table pass runs after the strict pass so it
// only sees constructs the strict shape left behind.
//
// Extract never fails: any input, including the empty string, produces a
// result, and an empty or whitespace-only document cleans to "\n".
func (e *Extractor) Extract(content string) *ExtractResult {
	var codeBlocks, tables []string

	text, removed := pipeline.RemoveFencedBlocks(content)
	codeBlocks = append(codeBlocks, removed...)

	text, removed = pipeline.RemoveIndentedBlocks(text)
	codeBlocks = append(codeBlocks, removed...)

	text, removed = pipeline.RemoveStrictTables(text)
	tables = append(tables, removed...)

	text, removed = pipeline.RemoveLooseTables(text)
	tables = append(tables, removed...)

	text = pipeline.Normalize(text, e.maxBlankLines)

	return &ExtractResult{
		CleanedText: text,
		CodeBlocks:  codeBlocks,
		Tables:      tables,
	}
}
