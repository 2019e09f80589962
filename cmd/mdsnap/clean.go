package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	mdsnap "github.com/alnah/go-mdsnap"
	"github.com/alnah/go-mdsnap/internal/config"
	"github.com/alnah/go-mdsnap/internal/fileutil"
)

// Sentinel errors for CLI file operations.
var (
	ErrNoInput      = errors.New("input file not found")
	ErrNotAFile     = errors.New("input is not a regular file")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteCleaned = errors.New("failed to write cleaned file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// fallbackInput is used when neither the flag nor the config names a file.
const fallbackInput = "input.md"

// fragmentPreviewLen bounds verbose fragment previews.
const fragmentPreviewLen = 80

// runClean reads the input file, strips code blocks and tables, and writes
// the cleaned text to a timestamped file in the output directory.
func runClean(positionalArgs []string, flags *cleanFlags, deps *Dependencies) error {
	applyVerbosity(flags.common)

	cfg, err := loadCommandConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeCleanFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath := resolveCleanInput(positionalArgs, cfg)

	content, err := readInputFile(inputPath)
	if err != nil {
		return err
	}

	// An empty document is not an error: warn and leave the output
	// directory untouched.
	if strings.TrimSpace(content) == "" {
		log.Warn().Str("file", inputPath).Msg("input file is empty, nothing to clean")
		return nil
	}

	extractor := mdsnap.NewExtractor(mdsnap.WithMaxBlankLines(cfg.Clean.MaxBlankLines))
	result := extractor.Extract(content)

	log.Info().
		Int("code_blocks", result.CodeBlockCount()).
		Int("tables", result.TableCount()).
		Msg("removed structural elements")
	logFragmentPreviews(result)

	if err := os.MkdirAll(cfg.Output.CleanDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteCleaned, err)
	}

	name := fileutil.TimestampedName(cfg.Output.Prefix, "md", deps.Now())
	outPath := filepath.Join(cfg.Output.CleanDir, name)
	if err := os.WriteFile(outPath, []byte(result.CleanedText), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteCleaned, err)
	}

	log.Info().Str("output", outPath).Msg("cleaned markdown written")
	fmt.Fprintln(deps.Stdout, outPath)
	return nil
}

// mergeCleanFlags merges CLI flags into config. CLI values override config values.
func mergeCleanFlags(flags *cleanFlags, cfg *config.Config) {
	if flags.input != "" {
		cfg.Input.Path = flags.input
	}
	if flags.outputDir != "" {
		cfg.Output.CleanDir = flags.outputDir
	}
	if flags.maxBlankLines != maxBlankLinesUnset {
		cfg.Clean.MaxBlankLines = flags.maxBlankLines
	}
}

// resolveCleanInput determines the input path from args, config, or fallback.
func resolveCleanInput(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Input.Path != "" {
		return cfg.Input.Path
	}
	return fallbackInput
}

// readInputFile validates the path and reads it as BOM-tolerant UTF-8.
func readInputFile(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s (create the file or pass -i)", ErrNoInput, path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	content, err := fileutil.ReadTextFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return content, nil
}

// logFragmentPreviews logs the start of each removed fragment at debug level.
func logFragmentPreviews(result *mdsnap.ExtractResult) {
	for i, block := range result.CodeBlocks {
		log.Debug().Msgf("code block %d: %s", i+1, fragmentPreview(block))
	}
	for i, table := range result.Tables {
		log.Debug().Msgf("table %d: %s", i+1, fragmentPreview(table))
	}
}

// fragmentPreview returns the first characters of a fragment on one line,
// with newlines escaped.
func fragmentPreview(s string) string {
	escaped := strings.ReplaceAll(s, "\n", `\n`)
	runes := []rune(escaped)
	if len(runes) <= fragmentPreviewLen {
		return escaped
	}
	return string(runes[:fragmentPreviewLen]) + "..."
}
