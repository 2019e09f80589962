// Package mdsnap strips structural elements from Markdown documents and
// renders those elements to cropped raster images using headless Chrome.
//
// # Extraction
//
// The Extractor removes fenced code blocks, indented code blocks, and pipe
// tables (strict and loose form) from a document, collects the removed
// fragments verbatim, and normalizes what remains:
//
//	result := mdsnap.Extract("# Doc\n\n```go\ncode\n```\n")
//	fmt.Println(result.CleanedText)
//	fmt.Println(result.CodeBlockCount(), result.TableCount())
//
// Extraction is a pure function of its input: no I/O, no shared state, and
// no error surface. Any input, including the empty string, yields a result;
// an empty document cleans to a single newline. Independent documents can
// be extracted concurrently without coordination.
//
// The detectors run in a fixed order: fenced blocks, indented blocks,
// strict tables, loose tables, then blank-line normalization. The order
// matters because later detectors must not fire inside regions removed by
// earlier ones (a table-shaped region inside a code fence is code, not a
// table).
//
// # Rendering
//
// The Renderer converts Markdown to HTML, locates the <table> elements and
// <pre> code blocks, screenshots each one as a standalone styled document
// in headless Chrome, crops the screenshot to its visible bounding box, and
// writes numbered PNGs:
//
//	r := mdsnap.NewRenderer()
//	defer r.Close()
//
//	result, err := r.Render(ctx, mdsnap.RenderInput{
//	    Markdown:  content,
//	    OutputDir: "output_images",
//	})
//
// Each element gets a viewport sized from its row or line count; the crop
// pass trims the slack, so overestimating is safe.
//
// # Parallel rendering
//
// For batches, RendererPool manages multiple browser instances:
//
//	pool := mdsnap.NewRendererPool(4)
//	defer pool.Close()
//
//	r := pool.Acquire()
//	defer pool.Release(r)
//
// # Browser requirements
//
// Rendering requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package mdsnap
