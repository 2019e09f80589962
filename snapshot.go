package mdsnap

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-mdsnap/internal/fileutil"
)

// screenshotter abstracts element capture to enable testing without a browser.
type screenshotter interface {
	CaptureHTML(ctx context.Context, htmlContent string, vp Viewport) ([]byte, error)
	Close() error
}

// Compile-time interface check
var _ screenshotter = (*rodScreenshotter)(nil)

// rodScreenshotter captures page screenshots using headless Chrome via
// go-rod. Rod automatically downloads Chromium on first run if not found.
type rodScreenshotter struct {
	browser *rod.Browser
	timeout time.Duration
	scale   float64
}

// newRodScreenshotter creates a rodScreenshotter with the given timeout and
// device scale factor.
func newRodScreenshotter(timeout time.Duration, scale float64) *rodScreenshotter {
	return &rodScreenshotter{timeout: timeout, scale: scale}
}

// ensureBrowser lazily connects to the browser.
func (s *rodScreenshotter) ensureBrowser() error {
	if s.browser != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	s.browser = rod.New().ControlURL(u)
	if err := s.browser.Connect(); err != nil {
		s.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (s *rodScreenshotter) Close() error {
	if s.browser != nil {
		err := s.browser.Close()
		s.browser = nil
		return err
	}
	return nil
}

// CaptureHTML writes the document to a temp file, opens it in headless
// Chrome with the requested viewport, and captures a full-page PNG against
// a transparent background so the crop pass can find the content bounds.
// Returns explicit errors instead of panicking when browser operations fail.
func (s *rodScreenshotter) CaptureHTML(ctx context.Context, htmlContent string, vp Viewport) ([]byte, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.ensureBrowser(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := s.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close() //nolint:errcheck // best-effort page teardown

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: s.scale,
		Mobile:            false,
	}); err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	// Transparent page background; the element documents rely on it for
	// bounding-box cropping.
	if err := (proto.EmulationSetDefaultBackgroundColorOverride{
		Color: &proto.DOMRGBA{R: 0, G: 0, B: 0, A: new(float64)},
	}).Call(page); err != nil {
		return nil, fmt.Errorf("%w: overriding background: %v", ErrPageCreate, err)
	}

	// Wait for page to load with timeout from context or default
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}

	return data, nil
}
