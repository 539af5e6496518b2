package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoMarkdownFiles    = errors.New("no markdown files found")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrDuplicateOutput    = errors.New("two pages map to the same output file")
	ErrReadAsset          = errors.New("failed to read asset file")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrConversionFailed   = errors.New("conversion failed")
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	// Load configuration
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg := config.DefaultConfig()
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Env overrides the file, CLI flags override both
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, flags.common, env)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	var pages *pageRenderer
	if !cfg.Output.Fragment {
		pages, err = newPageRenderer(cfg, env.Now())
		if err != nil {
			return err
		}
	}

	converter, err := newConverter(cfg, logger)
	if err != nil {
		return err
	}

	params := &batchParams{
		pages:   pages,
		json:    cfg.Output.JSON,
		workers: resolveWorkers(cfg.Workers, len(files)),
	}
	logger.Debug("converting",
		slog.String("input", inputPath),
		slog.Int("files", len(files)),
		slog.Int("workers", params.workers),
	)

	start := time.Now()
	results := convertBatch(ctx, converter, files, params)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if flags.common.verbose {
		logBacklinks(logger, results)
		logger.Debug("batch finished", slog.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
	}

	if failedCount > 0 {
		return newBatchError(results)
	}
	return nil
}

// newConverter builds the library converter from the merged config.
func newConverter(cfg *config.Config, logger *slog.Logger) (*md2html.Converter, error) {
	opts := []md2html.Option{
		md2html.WithOptions(cfg.Markdown),
		md2html.WithLogger(logger),
		md2html.WithReferencesFile(cfg.References.File),
	}

	// Validated by cfg.Validate; zero keeps the library default.
	timeout, _ := cfg.TimeoutDuration()
	if timeout > 0 {
		opts = append(opts, md2html.WithTimeout(timeout))
	}

	return md2html.NewConverter(opts...)
}

// newLogger builds the CLI logger. --verbose forces debug and --quiet
// forces error level, otherwise log.level from config applies.
func newLogger(cfg *config.Config, common commonFlags, env *Environment) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	switch {
	case common.verbose:
		level = slog.LevelDebug
	case common.quiet:
		level = slog.LevelError
	}

	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	return logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: env.Stderr,
	}), nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// I/O
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
	if flags.references != "" {
		cfg.References.File = flags.references
	}
	if flags.common.logFormat != "" {
		cfg.Log.Format = flags.common.logFormat
	}

	// Markdown
	if flags.markdown.unsafe {
		cfg.Markdown.Render.Unsafe = true
	}
	if flags.markdown.sanitize {
		cfg.Markdown.Render.Sanitize = true
	}
	if flags.markdown.hardWraps {
		cfg.Markdown.Render.HardWraps = true
	}
	if flags.markdown.typographer {
		cfg.Markdown.Extension.Typographer = true
	}
	if flags.markdown.noWikilinks {
		cfg.Markdown.Extension.Wikilinks = false
	}
	if flags.markdown.noEmoji {
		cfg.Markdown.Extension.Shortcodes = false
	}
	if flags.markdown.noHighlight {
		cfg.Markdown.Extension.SyntaxHighlighting = false
	}
	if flags.markdown.noFigures {
		cfg.Markdown.Render.FigureWithCaption = false
	}

	// Page
	if flags.page.title != "" {
		cfg.Page.Title = flags.page.title
	}
	if flags.page.language != "" {
		cfg.Page.Language = flags.page.language
	}
	if flags.page.style != "" {
		cfg.Page.Style = flags.page.style
	}
	if flags.page.highlightStyle != "" {
		cfg.Page.HighlightStyle = flags.page.highlightStyle
	}
	if flags.page.template != "" {
		cfg.Page.Template = flags.page.template
	}
	if flags.page.assetPath != "" {
		cfg.Page.AssetsPath = flags.page.assetPath
	}
	if flags.page.dateFormat != "" {
		cfg.Page.DateFormat = flags.page.dateFormat
	}

	// Output mode
	if flags.outputMode.fragment {
		cfg.Output.Fragment = true
	}
	if flags.outputMode.json {
		cfg.Output.JSON = true
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
