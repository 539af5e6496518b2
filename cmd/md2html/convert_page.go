package main

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/dateutil"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// pageRenderer wraps converted fragments into complete pages.
// Assets are resolved once per batch; render is safe for concurrent use.
type pageRenderer struct {
	tmpl       *assets.PageTemplate
	style      template.CSS
	highlight  template.CSS
	siteTitle  string
	language   string
	dateFormat string
	generated  time.Time
}

// newPageRenderer resolves the style, highlight CSS and template named in cfg.
func newPageRenderer(cfg *config.Config, now time.Time) (*pageRenderer, error) {
	if cfg.Page.DateFormat != "" {
		if _, err := dateutil.FormatDate(now, cfg.Page.DateFormat); err != nil {
			return nil, err
		}
	}

	resolver, err := assets.NewAssetResolver(cfg.Page.AssetsPath)
	if err != nil {
		return nil, fmt.Errorf("resolving assets: %w", err)
	}

	css, err := resolveStyle(cfg.Page.Style, resolver)
	if err != nil {
		return nil, err
	}

	var highlight string
	if cfg.Markdown.Extension.SyntaxHighlighting {
		highlight, err = assets.HighlightCSS(cfg.Page.HighlightStyle)
		if err != nil {
			return nil, err
		}
	}

	tmpl, err := resolveTemplate(cfg.Page.Template, resolver)
	if err != nil {
		return nil, err
	}

	return &pageRenderer{
		tmpl:       tmpl,
		style:      template.CSS(css),       // #nosec G203 -- trusted asset
		highlight:  template.CSS(highlight), // #nosec G203 -- generated by chroma
		siteTitle:  cfg.Page.Title,
		language:   cfg.Page.Language,
		dateFormat: cfg.Page.DateFormat,
		generated:  now,
	}, nil
}

// resolveStyle loads CSS by file path or by name through the resolver.
func resolveStyle(nameOrPath string, loader assets.AssetLoader) (string, error) {
	if nameOrPath == "" {
		return "", nil
	}
	if fileutil.IsFilePath(nameOrPath) {
		content, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadAsset, err)
		}
		return string(content), nil
	}
	return loader.LoadStyle(nameOrPath)
}

// resolveTemplate loads a page template by file path or by name through the resolver.
func resolveTemplate(nameOrPath string, loader assets.AssetLoader) (*assets.PageTemplate, error) {
	if fileutil.IsFilePath(nameOrPath) {
		content, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadAsset, err)
		}
		return assets.NewPageTemplate(string(content))
	}
	if nameOrPath == "" {
		nameOrPath = assets.DefaultTemplateName
	}
	return assets.LoadPageTemplate(loader, nameOrPath)
}

// render executes the page template for a converted page.
// Frontmatter "lang" overrides the site language and "date" is shown
// in the configured format.
func (r *pageRenderer) render(ctx context.Context, res *md2html.Result) ([]byte, error) {
	page := &assets.Page{
		Title:       res.Title,
		SiteTitle:   r.siteTitle,
		Description: res.Description,
		Language:    r.language,
		Style:       r.style,
		Highlight:   r.highlight,
		TOC:         template.HTML(res.TOC),  // #nosec G203 -- generated from rendered headings
		Content:     template.HTML(res.HTML), // #nosec G203 -- converter output
		Frontmatter: res.Frontmatter,
		Generated:   r.generated,
	}

	if lang := res.Frontmatter.String("lang"); lang != "" {
		page.Language = lang
	}
	if date, ok := res.Frontmatter.Time("date"); ok {
		formatted, err := dateutil.FormatDate(date, r.dateFormat)
		if err != nil {
			return nil, err
		}
		page.Date = formatted
	}

	return r.tmpl.Render(ctx, page)
}
