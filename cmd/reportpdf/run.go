package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	reportpdf "github.com/alnah/go-reportpdf"
	"github.com/alnah/go-reportpdf/internal/config"
	"github.com/alnah/go-reportpdf/internal/fileutil"
	"github.com/alnah/go-reportpdf/internal/hints"
)

// run renders every payload named by paths. It returns err for problems
// that stop the whole run, and failed for the first payload that could not
// be rendered.
func run(ctx context.Context, paths []string, flags *cliFlags, env *Environment) (failed error, err error) {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return nil, err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg, env)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format := flags.logFormat
	if format == "" {
		format = cfg.Log.Format
	}
	logger, err := newLogger(env.Stderr, cfg.Log.Level, format, flags.quiet, flags.verbose)
	if err != nil {
		return nil, err
	}

	inputs, err := discoverPayloads(paths)
	if err != nil {
		return nil, err
	}
	if len(inputs) > 1 && isPDFPath(flags.output) {
		return nil, fmt.Errorf("%w: %s names a single file but %d payloads were given", ErrInvalidOutput, flags.output, len(inputs))
	}

	if cfg.Fonts.URL == "" && !reportpdf.HasSystemCJKFont() {
		logger.Warn("no CJK font installed and no default font configured, payloads without fontUrl draw Chinese text as boxes" + hints.ForFontFallback())
	}

	opts := []reportpdf.Option{
		reportpdf.WithConfig(cfg),
		reportpdf.WithLogger(logger),
		reportpdf.WithMarkdownText(flags.markdown),
	}
	if env.Now != nil {
		opts = append(opts, reportpdf.WithClock(env.Now))
	}
	if env.Fetcher != nil {
		opts = append(opts, reportpdf.WithFetcher(env.Fetcher))
	}
	gen, err := reportpdf.NewGenerator(opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing generator: %w", err)
	}

	workers := reportpdf.ResolveWorkers(flags.workers)
	logger.WithFields(logrus.Fields{
		"workers":  workers,
		"payloads": len(inputs),
	}).Debug("starting")

	start := time.Now()
	results := generateBatch(ctx, gen, workers, inputs, &batchParams{
		output:       flags.output,
		configDir:    cfg.Output.Dir,
		hasAssetBase: cfg.Assets.BaseURL != "" || cfg.Assets.BaseDir != "",
		log:          logger,
	})
	logger.WithField("elapsed", time.Since(start).Round(time.Millisecond).String()).Debug("done")

	return printResults(results, flags.quiet, flags.verbose, env), nil
}

// loadConfig loads the named config, or the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies CLI flags over the config. The font URL falls back to
// the environment when neither flag nor config sets it.
func mergeFlags(flags *cliFlags, cfg *config.Config, env *Environment) {
	if flags.fontURL != "" {
		cfg.Fonts.URL = flags.fontURL
	}
	if cfg.Fonts.URL == "" {
		cfg.Fonts.URL = env.defaultFontURL()
	}
	if flags.assetDir != "" {
		cfg.Assets.BaseDir = flags.assetDir
	}
	if flags.baseURL != "" {
		cfg.Assets.BaseURL = flags.baseURL
	}
	if flags.pageSize != "" {
		cfg.Output.PageSize = flags.pageSize
	}
	if flags.noValidate {
		validate := false
		cfg.Output.Validate = &validate
	}
}
