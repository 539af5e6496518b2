package md2html

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/logging"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = pipeline.LineEndingPreprocessor{}
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Converter orchestrates the markdown-to-HTML conversion pipeline.
// A Converter is safe for concurrent use once created.
type Converter struct {
	cfg           converterConfig
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithOptions, WithLogger, WithTimeout).
// Returns ErrInvalidReferencesFile if the references file name contains a
// path separator.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			options:           pipeline.DefaultOptions(),
			referencesFile:    DefaultReferencesFile,
			timeout:           defaultTimeout,
			descriptionLength: pipeline.DefaultDescriptionLength,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if strings.ContainsAny(c.cfg.referencesFile, `/\`) {
		return nil, fmt.Errorf("%w: %q is not a file name", ErrInvalidReferencesFile, c.cfg.referencesFile)
	}
	if c.cfg.descriptionLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDescriptionSize, c.cfg.descriptionLength)
	}
	if c.cfg.logger == nil {
		c.cfg.logger = logging.NewDiscard()
	}

	// Injected by tests
	if c.preprocessor == nil {
		c.preprocessor = pipeline.LineEndingPreprocessor{}
	}
	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter(c.cfg.options)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the converted page.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	meta, body, err := frontmatter.Parse(input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}

	// Shared reference definitions are appended after the body so that
	// definitions in the page itself take precedence.
	content := body
	if input.SourceDir != "" && c.cfg.referencesFile != "" {
		content, err = pipeline.AppendReferences(content, filepath.Join(input.SourceDir, c.cfg.referencesFile))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReferences, err)
		}
	}

	// Normalize line endings
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to HTML, internal links already rewritten
	rendered, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent := rendered.HTML

	if c.cfg.options.Render.Sanitize {
		htmlContent = pipeline.Sanitize(htmlContent)
	}

	for _, label := range rendered.MissingReferences {
		c.cfg.logger.Warn("missing reference",
			"page", input.Name,
			"label", label,
			"hint", hints.MissingReference(label, c.referencesFileName()),
		)
	}

	summary, err := pipeline.Summarize(htmlContent, c.cfg.descriptionLength)
	if err != nil {
		return nil, fmt.Errorf("summarizing page: %w", err)
	}

	res := &Result{
		HTML:              htmlContent,
		TOC:               pipeline.TableOfContents(htmlContent),
		Frontmatter:       meta,
		Body:              body,
		LinksTo:           pipeline.LinksTo(htmlContent),
		MissingReferences: rendered.MissingReferences,
		Title:             meta.String("title"),
		Description:       meta.String("description"),
	}
	if res.Title == "" {
		res.Title = summary.Title
	}
	if res.Description == "" {
		res.Description = summary.Description
	}

	c.cfg.logger.Debug("page converted",
		slog.String("page", input.Name),
		slog.Int("bytes", len(htmlContent)),
		slog.Int("links", len(res.LinksTo)),
	)

	return res, nil
}

// ConvertFile reads the markdown file at path and converts it.
// The file's directory is used as SourceDir.
func (c *Converter) ConvertFile(ctx context.Context, path string) (*Result, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	return c.Convert(ctx, Input{
		Markdown:  string(content),
		SourceDir: filepath.Dir(path),
		Name:      path,
	})
}

// referencesFileName is the file named in missing reference hints.
func (c *Converter) referencesFileName() string {
	if c.cfg.referencesFile == "" {
		return DefaultReferencesFile
	}
	return c.cfg.referencesFile
}
