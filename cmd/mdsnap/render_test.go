package main

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	mdsnap "github.com/alnah/go-mdsnap"
	"github.com/alnah/go-mdsnap/internal/config"
)

func TestValidateWorkers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		wantErr bool
	}{
		{"zero is auto", 0, false},
		{"within bounds", 4, false},
		{"max allowed", mdsnap.MaxPoolSize, false},
		{"negative", -1, true},
		{"over max", mdsnap.MaxPoolSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWorkers(tt.workers)
			if tt.wantErr && !errors.Is(err, ErrInvalidWorkerCount) {
				t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.workers, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateWorkers(%d) error = %v, want nil", tt.workers, err)
			}
		})
	}
}

func TestRendererOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Render.Scale = 2.0
	cfg.Render.Timeout = "45s"

	opts, err := rendererOptions(cfg)
	if err != nil {
		t.Fatalf("rendererOptions() error = %v", err)
	}
	if len(opts) != 2 {
		t.Errorf("got %d options, want 2", len(opts))
	}
}

func TestRendererOptionsInvalidTimeout(t *testing.T) {
	for _, timeout := range []string{"nonsense", "-5s", "0s"} {
		cfg := config.DefaultConfig()
		cfg.Render.Timeout = timeout

		_, err := rendererOptions(cfg)
		if !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("rendererOptions(%q) error = %v, want ErrInvalidTimeout", timeout, err)
		}
	}
}

func TestResolveRenderInputs(t *testing.T) {
	cfg := config.DefaultConfig()

	got := resolveRenderInputs("flag.md", []string{"a.md", "b.md"}, cfg)
	want := []string{"flag.md", "a.md", "b.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("inputs = %v, want %v", got, want)
	}

	cfg.Input.Path = "conf.md"
	if got := resolveRenderInputs("", nil, cfg); !reflect.DeepEqual(got, []string{"conf.md"}) {
		t.Errorf("inputs = %v, want config path", got)
	}

	cfg.Input.Path = ""
	if got := resolveRenderInputs("", nil, cfg); !reflect.DeepEqual(got, []string{fallbackInput}) {
		t.Errorf("inputs = %v, want fallback", got)
	}
}

func TestBuildRenderJobsSingleFile(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "doc.md", "| a |\n|---|\n| 1 |\n")

	jobs, err := buildRenderJobs([]string{input}, "imgs")
	if err != nil {
		t.Fatalf("buildRenderJobs() error = %v", err)
	}

	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	// A single file writes into the image directory directly.
	if jobs[0].outputDir != "imgs" {
		t.Errorf("outputDir = %q, want imgs", jobs[0].outputDir)
	}
}

func TestBuildRenderJobsMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.md", "content a\n")
	b := writeTestFile(t, dir, "b.md", "content b\n")

	jobs, err := buildRenderJobs([]string{a, b}, "imgs")
	if err != nil {
		t.Fatalf("buildRenderJobs() error = %v", err)
	}

	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	if jobs[0].outputDir != filepath.Join("imgs", "a") {
		t.Errorf("outputDir = %q, want per-file subdirectory", jobs[0].outputDir)
	}
	if jobs[1].outputDir != filepath.Join("imgs", "b") {
		t.Errorf("outputDir = %q, want per-file subdirectory", jobs[1].outputDir)
	}
}

func TestBuildRenderJobsSkipsEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	empty := writeTestFile(t, dir, "empty.md", "  \n")
	full := writeTestFile(t, dir, "full.md", "content\n")

	jobs, err := buildRenderJobs([]string{empty, full}, "imgs")
	if err != nil {
		t.Fatalf("buildRenderJobs() error = %v", err)
	}

	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1 (empty file skipped)", len(jobs))
	}
	if jobs[0].inputPath != full {
		t.Errorf("kept job = %q, want %q", jobs[0].inputPath, full)
	}
	// One remaining file: no subdirectory.
	if jobs[0].outputDir != "imgs" {
		t.Errorf("outputDir = %q, want imgs", jobs[0].outputDir)
	}
}

func TestBuildRenderJobsMissingFile(t *testing.T) {
	_, err := buildRenderJobs([]string{filepath.Join(t.TempDir(), "absent.md")}, "imgs")
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("buildRenderJobs() error = %v, want ErrNoInput", err)
	}
}

func TestRunRenderNoElements(t *testing.T) {
	// Markdown without tables or code blocks returns before any browser is
	// launched, so the full path is exercisable in tests.
	dir := t.TempDir()
	input := writeTestFile(t, dir, "plain.md", "# Title\n\nJust prose.\n")
	deps, stdout, _ := testDeps()

	flags := &renderFlags{input: input, outputDir: filepath.Join(dir, "imgs")}
	if err := runRender(context.Background(), nil, flags, deps); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	if stdout.String() != "" {
		t.Errorf("stdout = %q, want empty for no elements", stdout.String())
	}
}

func TestRunRenderMissingInput(t *testing.T) {
	deps, _, _ := testDeps()

	flags := &renderFlags{input: filepath.Join(t.TempDir(), "absent.md")}
	err := runRender(context.Background(), nil, flags, deps)

	if !errors.Is(err, ErrNoInput) {
		t.Errorf("runRender() error = %v, want ErrNoInput", err)
	}
}

func TestRunRenderEmptyInputOnly(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "empty.md", "\n")
	deps, _, _ := testDeps()

	flags := &renderFlags{input: input, outputDir: filepath.Join(dir, "imgs")}
	if err := runRender(context.Background(), nil, flags, deps); err != nil {
		t.Fatalf("runRender() error = %v, want nil for empty input", err)
	}
}

func TestMergeRenderFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := &renderFlags{input: "a.md", outputDir: "imgs", scale: 2.5, workers: 3, timeout: "1m"}

	mergeRenderFlags(flags, cfg)

	if cfg.Input.Path != "a.md" || cfg.Output.ImageDir != "imgs" {
		t.Errorf("paths not merged: %+v", cfg)
	}
	if cfg.Render.Scale != 2.5 || cfg.Render.Workers != 3 || cfg.Render.Timeout != "1m" {
		t.Errorf("render settings not merged: %+v", cfg.Render)
	}
}

func TestMergeRenderFlagsKeepsConfigWhenUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Render.Scale = 1.5

	mergeRenderFlags(&renderFlags{}, cfg)

	if cfg.Render.Scale != 1.5 {
		t.Errorf("scale = %v, want config value 1.5", cfg.Render.Scale)
	}
	if cfg.Output.ImageDir != "output_images" {
		t.Errorf("imageDir = %q, want default", cfg.Output.ImageDir)
	}
}

func TestReportOutcomesAggregatesFailures(t *testing.T) {
	deps, stdout, _ := testDeps()
	outcomes := []renderOutcome{
		{inputPath: "ok.md", images: 2},
		{inputPath: "bad.md", err: mdsnap.ErrPageLoad},
	}

	err := reportOutcomes(outcomes, deps)

	if !errors.Is(err, mdsnap.ErrPageLoad) {
		t.Errorf("reportOutcomes() error = %v, want wrapped ErrPageLoad", err)
	}
	if !strings.Contains(err.Error(), "1 render(s) failed") {
		t.Errorf("error %q missing failure count", err)
	}
	if !strings.Contains(stdout.String(), "ok.md: 2 image(s)") {
		t.Errorf("stdout = %q, want success line", stdout.String())
	}
}
