package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// markdownFlags toggle parser and renderer features.
// Each flag only moves a feature away from its configured value when set.
type markdownFlags struct {
	unsafe      bool
	sanitize    bool
	hardWraps   bool
	typographer bool
	noWikilinks bool
	noEmoji     bool
	noHighlight bool // Disable syntax highlighting of code blocks
	noFigures   bool
}

// pageFlags holds page wrapping flags.
type pageFlags struct {
	title          string
	language       string
	style          string // Name or path for CSS
	highlightStyle string
	template       string // Name or path for the page template
	assetPath      string // Override asset directory
	dateFormat     string
}

// outputFlags holds output mode flags.
type outputFlags struct {
	fragment bool // Write the bare fragment, no page template
	json     bool // Write <page>.json metadata alongside each page
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	timeout    string
	references string
	markdown   markdownFlags
	page       pageFlags
	outputMode outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
}

// addMarkdownFlags adds markdown feature flags to a FlagSet.
func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.BoolVar(&f.unsafe, "unsafe", false, "keep raw HTML and dangerous URLs")
	fs.BoolVar(&f.sanitize, "sanitize", false, "sanitize the generated HTML")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "render line breaks as <br>")
	fs.BoolVar(&f.typographer, "typographer", false, "smart quotes and dashes")
	fs.BoolVar(&f.noWikilinks, "no-wikilinks", false, "disable [[wikilinks]]")
	fs.BoolVar(&f.noEmoji, "no-emoji", false, "disable :emoji: shortcodes")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable code syntax highlighting")
	fs.BoolVar(&f.noFigures, "no-figures", false, "do not wrap images in <figure>")
}

// addPageFlags adds page wrapping flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.title, "title", "", "site title appended to page titles")
	fs.StringVar(&f.language, "lang", "", "page language (default: en)")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "code highlighting style")
	fs.StringVar(&f.template, "template", "", "page template name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.dateFormat, "date-format", "", "display format for page dates")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.fragment, "fragment", false, "write bare HTML fragments")
	fs.BoolVar(&f.json, "json", false, "write <page>.json metadata")
}

// newConvertFlagSet builds the convert FlagSet bound to f.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-page conversion timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.references, "references", "", "shared reference definitions file name")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addMarkdownFlags(fs, &f.markdown)
	addPageFlags(fs, &f.page)
	addOutputFlags(fs, &f.outputMode)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage is written to usageOut when -h is given.
func parseConvertFlags(args []string, usageOut io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(usageOut)
	fs.Usage = func() { printConvertUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
