package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	mdsnap "github.com/alnah/go-mdsnap"
	"github.com/alnah/go-mdsnap/internal/config"
)

// Sentinel errors for render command validation.
var (
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// renderJob is one markdown file to snapshot.
type renderJob struct {
	inputPath string
	markdown  string
	outputDir string
}

// renderOutcome holds the result of rendering one file.
type renderOutcome struct {
	inputPath string
	images    int
	err       error
	duration  time.Duration
}

// runRender reads the input files and snapshots their tables and code
// blocks, distributing files over a pool of renderers.
func runRender(ctx context.Context, positionalArgs []string, flags *renderFlags, deps *Dependencies) error {
	applyVerbosity(flags.common)

	cfg, err := loadCommandConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeRenderFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateWorkers(cfg.Render.Workers); err != nil {
		return err
	}

	opts, err := rendererOptions(cfg)
	if err != nil {
		return err
	}

	jobs, err := buildRenderJobs(resolveRenderInputs(flags.input, positionalArgs, cfg), cfg.Output.ImageDir)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		log.Warn().Msg("no renderable input, nothing to do")
		return nil
	}

	poolSize := mdsnap.ResolvePoolSize(cfg.Render.Workers)
	if poolSize > len(jobs) {
		poolSize = len(jobs)
	}
	log.Debug().Int("pool_size", poolSize).Int("files", len(jobs)).Msg("starting renderers")

	pool := mdsnap.NewRendererPool(poolSize, opts...)
	defer pool.Close() //nolint:errcheck // browsers torn down on exit anyway

	outcomes := renderBatch(ctx, pool, jobs)
	return reportOutcomes(outcomes, deps)
}

// mergeRenderFlags merges CLI flags into config. CLI values override config values.
func mergeRenderFlags(flags *renderFlags, cfg *config.Config) {
	if flags.input != "" {
		cfg.Input.Path = flags.input
	}
	if flags.outputDir != "" {
		cfg.Output.ImageDir = flags.outputDir
	}
	if flags.scale > 0 {
		cfg.Render.Scale = flags.scale
	}
	if flags.workers > 0 {
		cfg.Render.Workers = flags.workers
	}
	if flags.timeout != "" {
		cfg.Render.Timeout = flags.timeout
	}
}

// resolveRenderInputs combines the -i flag, positional args, config, and the
// fallback into the list of files to render.
func resolveRenderInputs(flagInput string, args []string, cfg *config.Config) []string {
	var inputs []string
	if flagInput != "" {
		inputs = append(inputs, flagInput)
	}
	inputs = append(inputs, args...)
	if len(inputs) > 0 {
		return inputs
	}
	if cfg.Input.Path != "" {
		return []string{cfg.Input.Path}
	}
	return []string{fallbackInput}
}

// rendererOptions translates the config into renderer options.
func rendererOptions(cfg *config.Config) ([]mdsnap.RendererOption, error) {
	var opts []mdsnap.RendererOption
	if cfg.Render.Scale > 0 {
		opts = append(opts, mdsnap.WithScaleFactor(cfg.Render.Scale))
	}
	if cfg.Render.Timeout != "" {
		d, err := time.ParseDuration(cfg.Render.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q (expected e.g. 30s, 2m)", ErrInvalidTimeout, cfg.Render.Timeout)
		}
		opts = append(opts, mdsnap.WithTimeout(d))
	}
	return opts, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > mdsnap.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, mdsnap.MaxPoolSize)
	}
	return nil
}

// buildRenderJobs reads every input file up front so a missing file fails the
// run before any browser is launched. Empty files are skipped with a warning.
// A single file writes into the image directory directly; multiple files each
// get a subdirectory named after the file, so the numbered snapshots cannot
// collide.
func buildRenderJobs(inputs []string, imageDir string) ([]renderJob, error) {
	var jobs []renderJob
	for _, path := range inputs {
		content, err := readInputFile(path)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(content) == "" {
			log.Warn().Str("file", path).Msg("input file is empty, skipping")
			continue
		}
		jobs = append(jobs, renderJob{inputPath: path, markdown: content, outputDir: imageDir})
	}

	if len(jobs) > 1 {
		for i := range jobs {
			base := strings.TrimSuffix(filepath.Base(jobs[i].inputPath), filepath.Ext(jobs[i].inputPath))
			jobs[i].outputDir = filepath.Join(imageDir, base)
		}
	}
	return jobs, nil
}

// renderBatch processes jobs concurrently using the renderer pool.
func renderBatch(ctx context.Context, pool *mdsnap.RendererPool, jobs []renderJob) []renderOutcome {
	outcomes := make([]renderOutcome, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job renderJob) {
			defer wg.Done()

			renderer := pool.Acquire()
			defer pool.Release(renderer)

			start := time.Now()
			result, err := renderer.Render(ctx, mdsnap.RenderInput{
				Markdown:  job.markdown,
				OutputDir: job.outputDir,
			})

			outcome := renderOutcome{
				inputPath: job.inputPath,
				err:       err,
				duration:  time.Since(start),
			}
			if err == nil {
				outcome.images = len(result.Images)
			}
			outcomes[i] = outcome
		}(i, job)
	}
	wg.Wait()

	return outcomes
}

// reportOutcomes logs per-file results and aggregates failures so callers can
// map the original errors to exit codes.
func reportOutcomes(outcomes []renderOutcome, deps *Dependencies) error {
	var failures []error
	for _, o := range outcomes {
		if o.err != nil {
			log.Error().Str("file", o.inputPath).Err(o.err).Msg("render failed")
			failures = append(failures, fmt.Errorf("%s: %w", o.inputPath, o.err))
			continue
		}
		if o.images == 0 {
			log.Warn().Str("file", o.inputPath).Msg("no tables or code blocks found")
			continue
		}
		log.Info().
			Str("file", o.inputPath).
			Int("images", o.images).
			Dur("took", o.duration).
			Msg("snapshots written")
		fmt.Fprintf(deps.Stdout, "%s: %d image(s)\n", o.inputPath, o.images)
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d render(s) failed: %w", len(failures), errors.Join(failures...))
	}
	return nil
}
