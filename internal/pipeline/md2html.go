package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Rendered is the output of a markdown conversion.
type Rendered struct {
	// HTML is a fragment, not a complete document.
	HTML string
	// MissingReferences lists unresolved reference link labels.
	MissingReferences []string
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (Rendered, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md   goldmark.Markdown
	opts Options
}

// NewGoldmarkConverter creates a GoldmarkConverter with the extensions
// enabled in opts. Headings always get slug IDs and an anchor link.
func NewGoldmarkConverter(opts Options) *GoldmarkConverter {
	exts := []goldmark.Extender{headingAnchors{}}

	if opts.Extension.Autolink {
		exts = append(exts, extension.Linkify)
	}
	if opts.Extension.Table {
		exts = append(exts, extension.Table)
	}
	if opts.Extension.Strikethrough {
		exts = append(exts, extension.Strikethrough)
	}
	if opts.Extension.Highlight {
		exts = append(exts, marks{})
	}
	if opts.Extension.Tasklist {
		exts = append(exts, extension.TaskList)
	}
	if opts.Extension.Footnotes {
		exts = append(exts, extension.Footnote)
	}
	if opts.Extension.DescriptionLists {
		exts = append(exts, extension.DefinitionList)
	}
	if opts.Extension.Typographer {
		exts = append(exts, extension.Typographer)
	}
	if opts.Extension.Alerts {
		exts = append(exts, alerts{})
	}
	if opts.Extension.Shortcodes {
		exts = append(exts, emoji.Emoji)
	}
	if opts.Extension.Wikilinks {
		exts = append(exts, wikilinks{titleBeforePipe: opts.Extension.WikilinksTitleBeforePipe})
	}
	if opts.Extension.SyntaxHighlighting {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes for smaller HTML and external stylesheet control
			),
		))
	}
	if opts.Render.FigureWithCaption {
		exts = append(exts, figures{})
	}
	if opts.Render.IgnoreEmptyLinks {
		exts = append(exts, emptyLinks{})
	}

	rendererOpts := []renderer.Option{html.WithXHTML()}
	if opts.Render.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	if opts.Render.Unsafe {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md, opts: opts}
}

// ToHTML converts Markdown content to an HTML fragment with internal links
// rewritten. Supports context cancellation via goroutine + select pattern
// since Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (Rendered, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return Rendered{}, err
	}

	type result struct {
		rendered Rendered
		err      error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, r)}
			}
		}()

		source := []byte(content)
		// Heading IDs are generated by headingIDs from this per-document set.
		pc := parser.NewContext(parser.WithIDs(newSlugIDs()))
		doc := c.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

		var buf bytes.Buffer
		if err := c.md.Renderer().Render(&buf, source, doc); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}

		out := buf.String()
		if c.opts.Render.Unsafe && c.opts.Extension.Tagfilter {
			out = FilterTags(out)
		}
		done <- result{rendered: Rendered{
			HTML:              FixInternalLinks(out),
			MissingReferences: MissingReferences(doc, source),
		}}
	}()

	select {
	case <-ctx.Done():
		return Rendered{}, ctx.Err()
	case r := <-done:
		return r.rendered, r.err
	}
}
