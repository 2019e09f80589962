package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdsnap/internal/config"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCleanWritesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "doc.md", "para\n\n```go\ncode\n```\n\n| a |\n|---|\n| 1 |\n")
	outDir := filepath.Join(dir, "out")
	deps, stdout, _ := testDeps()

	flags := &cleanFlags{input: input, outputDir: outDir, maxBlankLines: maxBlankLinesUnset}
	if err := runClean(nil, flags, deps); err != nil {
		t.Fatalf("runClean() error = %v", err)
	}

	outPath := filepath.Join(outDir, "cleaned_20240102_150405.md")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("cleaned file not written: %v", err)
	}
	if got := string(data); got != "para\n" {
		t.Errorf("cleaned content = %q, want %q", got, "para\n")
	}
	if !strings.Contains(stdout.String(), outPath) {
		t.Errorf("stdout = %q, want output path", stdout.String())
	}
}

func TestRunCleanPositionalInput(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "notes.md", "hello\n")
	outDir := filepath.Join(dir, "out")
	deps, _, _ := testDeps()

	flags := &cleanFlags{outputDir: outDir, maxBlankLines: maxBlankLinesUnset}
	if err := runClean([]string{input}, flags, deps); err != nil {
		t.Fatalf("runClean() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "cleaned_20240102_150405.md")); err != nil {
		t.Errorf("cleaned file not written: %v", err)
	}
}

func TestRunCleanMissingInput(t *testing.T) {
	deps, _, _ := testDeps()
	flags := &cleanFlags{
		input:         filepath.Join(t.TempDir(), "absent.md"),
		maxBlankLines: maxBlankLinesUnset,
	}

	err := runClean(nil, flags, deps)

	if !errors.Is(err, ErrNoInput) {
		t.Errorf("runClean() error = %v, want ErrNoInput", err)
	}
	if !strings.Contains(err.Error(), "absent.md") {
		t.Errorf("error %q does not name the missing file", err)
	}
}

func TestRunCleanDirectoryInput(t *testing.T) {
	deps, _, _ := testDeps()
	flags := &cleanFlags{input: t.TempDir(), maxBlankLines: maxBlankLinesUnset}

	err := runClean(nil, flags, deps)

	if !errors.Is(err, ErrNotAFile) {
		t.Errorf("runClean() error = %v, want ErrNotAFile", err)
	}
}

func TestRunCleanEmptyInput(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "empty.md", "   \n\n  ")
	outDir := filepath.Join(dir, "out")
	deps, _, _ := testDeps()

	flags := &cleanFlags{input: input, outputDir: outDir, maxBlankLines: maxBlankLinesUnset}
	if err := runClean(nil, flags, deps); err != nil {
		t.Fatalf("runClean() error = %v, want nil for empty input", err)
	}

	// Nothing to clean: the output directory is not even created.
	if _, err := os.Stat(outDir); !errors.Is(err, os.ErrNotExist) {
		t.Error("output directory created for empty input")
	}
}

func TestRunCleanBOMInput(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "bom.md", "\xEF\xBB\xBFtitle\n")
	outDir := filepath.Join(dir, "out")
	deps, _, _ := testDeps()

	flags := &cleanFlags{input: input, outputDir: outDir, maxBlankLines: maxBlankLinesUnset}
	if err := runClean(nil, flags, deps); err != nil {
		t.Fatalf("runClean() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "cleaned_20240102_150405.md"))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "title\n" {
		t.Errorf("cleaned content = %q, want BOM stripped", got)
	}
}

func TestRunCleanInvalidConfigValue(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "doc.md", "text\n")
	deps, _, _ := testDeps()

	flags := &cleanFlags{input: input, maxBlankLines: config.MaxBlankLinesLimit + 1}
	err := runClean(nil, flags, deps)

	if !errors.Is(err, config.ErrInvalidValue) {
		t.Errorf("runClean() error = %v, want ErrInvalidValue", err)
	}
}

func TestMergeCleanFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := &cleanFlags{input: "a.md", outputDir: "dir", maxBlankLines: 1}

	mergeCleanFlags(flags, cfg)

	if cfg.Input.Path != "a.md" || cfg.Output.CleanDir != "dir" || cfg.Clean.MaxBlankLines != 1 {
		t.Errorf("merge result = %+v", cfg)
	}
}

func TestMergeCleanFlagsKeepsConfigWhenUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Clean.MaxBlankLines = 5
	flags := &cleanFlags{maxBlankLines: maxBlankLinesUnset}

	mergeCleanFlags(flags, cfg)

	if cfg.Clean.MaxBlankLines != 5 {
		t.Errorf("maxBlankLines = %d, want config value 5", cfg.Clean.MaxBlankLines)
	}
	if cfg.Output.CleanDir != "output" {
		t.Errorf("cleanDir = %q, want default", cfg.Output.CleanDir)
	}
}

func TestResolveCleanInput(t *testing.T) {
	cfg := config.DefaultConfig()

	if got := resolveCleanInput([]string{"pos.md"}, cfg); got != "pos.md" {
		t.Errorf("positional arg ignored: %q", got)
	}

	cfg.Input.Path = "conf.md"
	if got := resolveCleanInput(nil, cfg); got != "conf.md" {
		t.Errorf("config path ignored: %q", got)
	}

	cfg.Input.Path = ""
	if got := resolveCleanInput(nil, cfg); got != fallbackInput {
		t.Errorf("fallback = %q, want %q", got, fallbackInput)
	}
}

func TestFragmentPreview(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short fragment", "| a |\n| 1 |", `| a |\n| 1 |`},
		{"exact limit unchanged", strings.Repeat("x", 80), strings.Repeat("x", 80)},
		{"long fragment truncated", strings.Repeat("y", 100), strings.Repeat("y", 80) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fragmentPreview(tt.in); got != tt.want {
				t.Errorf("fragmentPreview() = %q, want %q", got, tt.want)
			}
		})
	}
}
