package assets

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"
)

// Page holds the data a page template is executed with.
type Page struct {
	Title       string
	SiteTitle   string
	Description string
	Language    string
	Date        string // Already formatted for display
	Style       template.CSS
	Highlight   template.CSS
	TOC         template.HTML
	Content     template.HTML
	Frontmatter map[string]any
	Generated   time.Time
}

// PageTemplate renders fragments into complete pages.
type PageTemplate struct {
	tmpl *template.Template
}

// NewPageTemplate parses tmplContent as an html/template.
// Returns ErrTemplateParse if the template cannot be parsed.
func NewPageTemplate(tmplContent string) (*PageTemplate, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &PageTemplate{tmpl: tmpl}, nil
}

// Render executes the template with page.
// Returns ErrPageRender if execution fails.
func (p *PageTemplate) Render(ctx context.Context, page *Page) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.Bytes(), nil
}

// LoadPageTemplate loads the named template through loader and parses it.
func LoadPageTemplate(loader AssetLoader, name string) (*PageTemplate, error) {
	content, err := loader.LoadTemplate(name)
	if err != nil {
		return nil, err
	}
	return NewPageTemplate(content)
}
