package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdsnap/internal/config"
)

// Sentinel errors for flag and command parsing.
var (
	ErrNoCommand      = errors.New("no command specified")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlag    = errors.New("invalid flags")
)

// maxBlankLinesUnset marks --max-blank-lines as not given, so the config
// value survives the merge. Zero is a valid setting (no blank lines kept).
const maxBlankLinesUnset = -1

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// cleanFlags holds all flags for the clean command.
type cleanFlags struct {
	common        commonFlags
	input         string
	outputDir     string
	maxBlankLines int
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common    commonFlags
	input     string
	outputDir string
	scale     float64
	workers   int
	timeout   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show fragment previews and timing")
}

// parseCleanFlags parses clean command flags and returns positional args.
func parseCleanFlags(args []string) (*cleanFlags, []string, error) {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	f := &cleanFlags{}

	fs.StringVarP(&f.input, "input", "i", "", "markdown file to clean (default input.md)")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "directory for the cleaned file (default output)")
	fs.IntVar(&f.maxBlankLines, "max-blank-lines", maxBlankLinesUnset,
		"blank lines kept between content (default 2)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printCleanUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	return f, fs.Args(), nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderFlags{}

	fs.StringVarP(&f.input, "input", "i", "", "markdown file to render (default input.md)")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "directory for snapshots (default output_images)")
	fs.Float64Var(&f.scale, "scale", 0, "device scale factor (default 3)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renderers for multiple files (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-page load timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printRenderUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	return f, fs.Args(), nil
}

// applyVerbosity sets the global log level from the common flags.
// --quiet wins over --verbose when both are given.
func applyVerbosity(f commonFlags) {
	switch {
	case f.quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case f.verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// loadCommandConfig loads the named config, or defaults when no name is given.
func loadCommandConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
