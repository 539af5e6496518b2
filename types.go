package md2html

import (
	"log/slog"
	"time"

	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Options configures the markdown renderer. See DefaultOptions.
type Options = pipeline.Options

// RenderOptions control how the parsed document is written out.
type RenderOptions = pipeline.RenderOptions

// ExtensionOptions toggle markdown syntax beyond CommonMark.
type ExtensionOptions = pipeline.ExtensionOptions

// Frontmatter holds the decoded metadata block of a page.
type Frontmatter = frontmatter.Frontmatter

// DefaultOptions returns the renderer options used when none are given.
func DefaultOptions() Options {
	return pipeline.DefaultOptions()
}

// DefaultReferencesFile is the file whose reference definitions are shared
// by every page of a directory.
const DefaultReferencesFile = pipeline.DefaultReferencesFile

// Input is a single page to convert.
type Input struct {
	Markdown  string // Page source, frontmatter included
	SourceDir string // Directory searched for the references file (empty = none)
	Name      string // Page identifier used in log messages (optional)
}

// Result is a converted page.
type Result struct {
	// HTML is the rendered fragment, not a complete document.
	HTML string
	// TOC is a nested <ul> list of the headings, "" when there are none.
	TOC string
	// Frontmatter is the decoded metadata, empty when the page has none.
	Frontmatter Frontmatter
	// Body is the markdown after the frontmatter block.
	Body string
	// LinksTo lists the internal pages this page links to, in order.
	LinksTo []string
	// MissingReferences lists reference labels without a definition.
	MissingReferences []string
	// Title is frontmatter "title", else the first <h1>.
	Title string
	// Description is frontmatter "description", else the start of the first paragraph.
	Description string
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	options           Options
	logger            *slog.Logger
	referencesFile    string
	timeout           time.Duration
	descriptionLength int
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithOptions sets the renderer options.
func WithOptions(opts Options) Option {
	return func(c *Converter) {
		c.cfg.options = opts
	}
}

// WithLogger sets the logger receiving missing reference warnings.
// A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = logger
	}
}

// WithReferencesFile sets the name of the shared references file looked up
// in Input.SourceDir. An empty name disables the lookup.
func WithReferencesFile(name string) Option {
	return func(c *Converter) {
		c.cfg.referencesFile = name
	}
}

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithDescriptionLength sets the rune limit of descriptions derived from the
// first paragraph. Zero keeps the whole paragraph.
func WithDescriptionLength(n int) Option {
	return func(c *Converter) {
		c.cfg.descriptionLength = n
	}
}
