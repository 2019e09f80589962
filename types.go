package mdsnap

import "time"

// ExtractResult holds the outcome of one extraction run: the cleaned text
// and the removed fragments, verbatim including their delimiters. The
// result is created once per run and never mutated afterwards.
//
// Fragments are ordered by discovery within each detector, and detector
// outputs are concatenated in pipeline order: fenced blocks then indented
// blocks in CodeBlocks, strict tables then loose tables in Tables. Across
// detector types this is not original document order.
type ExtractResult struct {
	CleanedText string   // cleaned document, exactly one trailing newline
	CodeBlocks  []string // removed fenced and indented code blocks
	Tables      []string // removed strict and loose pipe tables
}

// CodeBlockCount returns the number of removed code blocks.
func (r *ExtractResult) CodeBlockCount() int {
	return len(r.CodeBlocks)
}

// TableCount returns the number of removed tables.
func (r *ExtractResult) TableCount() int {
	return len(r.Tables)
}

// RenderInput contains rendering parameters.
type RenderInput struct {
	Markdown  string // Markdown content (required)
	OutputDir string // Directory for the numbered PNGs (required, created if missing)
}

// RenderedImage describes one written snapshot.
type RenderedImage struct {
	Path string // file path of the cropped PNG
	Kind string // "table" or "code"
}

// RenderResult holds the outcome of one render run.
type RenderResult struct {
	Images []RenderedImage // written files, one per element, in document order
}

// Viewport is the browser window size used for one element screenshot.
// Heights are deliberate overestimates; the crop pass trims the slack.
type Viewport struct {
	Width  int
	Height int
}

// Snapshot geometry. Width and per-element height estimates follow the
// "screenshot big, crop tight" approach: a 4K-wide window and roomy
// vertical buffers so nothing is clipped before cropping.
const (
	viewportWidth = 3840

	tableRowHeight     = 100
	tableHeightPadding = 1000

	codeLineHeight     = 130
	codeHeightPadding  = 1500
	DefaultScaleFactor = 3.0 // device scale factor, 3x for crisp 4K output
)

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMaxBlankLines bounds the number of consecutive blank lines the
// normalizer leaves between content (default 2).
// Panics if n < 0 (programmer error, similar to time.NewTicker).
func WithMaxBlankLines(n int) ExtractorOption {
	if n < 0 {
		panic("mdsnap: WithMaxBlankLines bound must not be negative")
	}
	return func(e *Extractor) {
		e.maxBlankLines = n
	}
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout time.Duration
	scale   float64
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) RendererOption {
	if d <= 0 {
		panic("mdsnap: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithScaleFactor sets the device scale factor for screenshots.
// Panics if scale <= 0 (programmer error).
func WithScaleFactor(scale float64) RendererOption {
	if scale <= 0 {
		panic("mdsnap: WithScaleFactor must be positive")
	}
	return func(r *Renderer) {
		r.cfg.scale = scale
	}
}
