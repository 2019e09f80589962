package mdsnap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdsnap/internal/imgutil"
	"github.com/alnah/go-mdsnap/internal/pipeline"
)

// Directory and file permissions for written snapshots.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ screenshotter          = (*rodScreenshotter)(nil)
)

// Renderer turns the tables and code blocks of a Markdown document into
// cropped PNG snapshots. Create with NewRenderer, render with Render, and
// Close when done to release the browser.
type Renderer struct {
	cfg           rendererConfig
	htmlConverter pipeline.HTMLConverter
	shooter       screenshotter
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithScaleFactor).
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		cfg:           rendererConfig{timeout: defaultTimeout, scale: DefaultScaleFactor},
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(r)
	}

	// Create screenshotter if not injected (e.g., by tests)
	if r.shooter == nil {
		r.shooter = newRodScreenshotter(r.cfg.timeout, r.cfg.scale)
	}

	return r
}

// Render converts the Markdown to HTML, screenshots every table and code
// block, crops each image to its visible content, and writes numbered PNGs
// ("1_table.png", "1_code.png", ...) into input.OutputDir. Tables and code
// blocks are numbered independently, in document order.
// The context is used for cancellation and timeout.
func (r *Renderer) Render(ctx context.Context, input RenderInput) (*RenderResult, error) {
	if err := validateRenderInput(input); err != nil {
		return nil, err
	}

	htmlContent, err := r.htmlConverter.ToHTML(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	elements, err := pipeline.CollectElements(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("collecting elements: %w", err)
	}

	result := &RenderResult{}
	if len(elements) == 0 {
		return result, nil
	}

	if err := os.MkdirAll(input.OutputDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	counters := map[pipeline.ElementKind]int{}
	for _, el := range elements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		counters[el.Kind]++
		filename := fmt.Sprintf("%d_%s.png", counters[el.Kind], el.Kind)
		path := filepath.Join(input.OutputDir, filename)

		if err := r.renderElement(ctx, el, path); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", filename, err)
		}

		result.Images = append(result.Images, RenderedImage{
			Path: path,
			Kind: el.Kind.String(),
		})
	}

	return result, nil
}

// renderElement screenshots one element and writes the cropped PNG.
func (r *Renderer) renderElement(ctx context.Context, el pipeline.Element, path string) error {
	var doc string
	switch el.Kind {
	case pipeline.ElementTable:
		doc = buildTableDocument(el.HTML)
	default:
		doc = buildCodeDocument(el.HTML)
	}

	data, err := r.shooter.CaptureHTML(ctx, doc, viewportFor(el))
	if err != nil {
		return err
	}

	cropped, err := imgutil.CropToContent(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, cropped, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteImage, err)
	}
	return nil
}

// Close releases resources (headless Chrome browser).
func (r *Renderer) Close() error {
	if r.shooter != nil {
		return r.shooter.Close()
	}
	return nil
}

// viewportFor estimates a viewport tall enough for the element. Tables get
// a per-row budget, code blocks a per-line budget; both carry padding so the
// screenshot never clips before cropping.
func viewportFor(el pipeline.Element) Viewport {
	units := el.Units
	if units < 1 {
		units = 1
	}

	height := units*codeLineHeight + codeHeightPadding
	if el.Kind == pipeline.ElementTable {
		height = units*tableRowHeight + tableHeightPadding
	}

	return Viewport{Width: viewportWidth, Height: height}
}

// validateRenderInput checks that required fields are present.
func validateRenderInput(input RenderInput) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if input.OutputDir == "" {
		return ErrEmptyOutputDir
	}
	return nil
}
