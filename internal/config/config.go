// Package config loads mdsnap configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsnap/internal/fileutil"
	"github.com/alnah/go-mdsnap/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Bounds for validated settings.
const (
	MaxBlankLinesLimit = 10  // more blank lines than this serves no layout purpose
	MinScale           = 1.0 // below native resolution the crop gets blurry
	MaxScale           = 4.0 // beyond 4x the screenshots exceed Chrome texture limits
)

// Config holds all configuration for cleaning and rendering.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Clean  CleanConfig  `yaml:"clean"`
	Render RenderConfig `yaml:"render"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Path string `yaml:"path"` // Default input file (empty = input.md next to cwd)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	CleanDir string `yaml:"cleanDir"` // Directory for cleaned markdown (default "output")
	ImageDir string `yaml:"imageDir"` // Directory for element snapshots (default "output_images")
	Prefix   string `yaml:"prefix"`   // Prefix for timestamped clean output (default "cleaned")
}

// CleanConfig tunes the extractor.
type CleanConfig struct {
	MaxBlankLines int `yaml:"maxBlankLines"` // Blank lines allowed between content (default 2)
}

// RenderConfig tunes the snapshot renderer.
type RenderConfig struct {
	Scale   float64 `yaml:"scale"`   // Device scale factor (default 3, "ultra sharp")
	Workers int     `yaml:"workers"` // Parallel renderers for batch input (0 = auto)
	Timeout string  `yaml:"timeout"` // Per-page load timeout, e.g. "30s"
}

// DefaultConfig returns the configuration matching the CLI flag defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Path: ""},
		Output: OutputConfig{CleanDir: "output", ImageDir: "output_images", Prefix: "cleaned"},
		Clean:  CleanConfig{MaxBlankLines: 2},
		Render: RenderConfig{Scale: 3, Workers: 0, Timeout: ""},
	}
}

// Validate checks that configured values are within bounds.
func (c *Config) Validate() error {
	if c.Clean.MaxBlankLines < 0 || c.Clean.MaxBlankLines > MaxBlankLinesLimit {
		return fmt.Errorf("%w: clean.maxBlankLines %d (must be 0-%d)",
			ErrInvalidValue, c.Clean.MaxBlankLines, MaxBlankLinesLimit)
	}
	if c.Render.Scale != 0 && (c.Render.Scale < MinScale || c.Render.Scale > MaxScale) {
		return fmt.Errorf("%w: render.scale %.1f (must be %.1f-%.1f)",
			ErrInvalidValue, c.Render.Scale, MinScale, MaxScale)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: render.workers %d (must be >= 0)", ErrInvalidValue, c.Render.Workers)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdsnap", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
