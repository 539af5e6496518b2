package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
)

var testNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func TestNewPageRenderer(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		r, err := newPageRenderer(config.DefaultConfig(), testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.style == "" {
			t.Error("default style should be loaded")
		}
		if !strings.Contains(string(r.highlight), ".chroma") {
			t.Error("highlight CSS should be generated")
		}
	})

	t.Run("no highlight CSS when highlighting is off", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.Markdown.Extension.SyntaxHighlighting = false
		r, err := newPageRenderer(cfg, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.highlight != "" {
			t.Errorf("highlight = %q, want empty", r.highlight)
		}
	})

	t.Run("style and template from files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		css := filepath.Join(dir, "site.css")
		tmpl := filepath.Join(dir, "bare.html")
		writeFile(t, css, "body{color:red}")
		writeFile(t, tmpl, "<title>{{.Title}}</title><style>{{.Style}}</style>{{.Content}}")

		cfg := config.DefaultConfig()
		cfg.Page.Style = css
		cfg.Page.Template = tmpl
		r, err := newPageRenderer(cfg, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := r.render(context.Background(), &md2html.Result{Title: "T", HTML: "<p>x</p>"})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if want := "<title>T</title><style>body{color:red}</style><p>x</p>"; string(out) != want {
			t.Errorf("render() = %q, want %q", out, want)
		}
	})

	t.Run("custom asset path shadows embedded", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "styles", "brand.css"), ".brand{}")

		cfg := config.DefaultConfig()
		cfg.Page.AssetsPath = dir
		cfg.Page.Style = "brand"
		r, err := newPageRenderer(cfg, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.style != ".brand{}" {
			t.Errorf("style = %q, want .brand{}", r.style)
		}
	})

	errorTests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr error
	}{
		{"unknown style", func(c *config.Config) { c.Page.Style = "fancy" }, assets.ErrStyleNotFound},
		{"unknown template", func(c *config.Config) { c.Page.Template = "post" }, assets.ErrTemplateNotFound},
		{"unknown highlight style", func(c *config.Config) { c.Page.HighlightStyle = "nope" }, assets.ErrHighlightStyleNotFound},
		{"missing style file", func(c *config.Config) { c.Page.Style = "./missing.css" }, ErrReadAsset},
		{"missing asset path", func(c *config.Config) { c.Page.AssetsPath = "/no/such/dir" }, assets.ErrInvalidBasePath},
	}
	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			_, err := newPageRenderer(cfg, testNow)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPageRenderer_Render(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Page.Title = "Site"
	cfg.Page.DateFormat = "long"
	r, err := newPageRenderer(cfg, testNow)
	if err != nil {
		t.Fatalf("newPageRenderer: %v", err)
	}

	res := &md2html.Result{
		HTML:        "<h1>Bonjour</h1>\n",
		TOC:         "<ul>\n<li><a href=\"#bonjour\">Bonjour</a></li>\n</ul>\n",
		Title:       "Bonjour",
		Description: "Une page",
		Frontmatter: md2html.Frontmatter{"lang": "fr", "date": "2024-03-05"},
	}

	out, err := r.render(context.Background(), res)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, want := range []string{
		`<html lang="fr">`,
		"<title>Bonjour | Site</title>",
		`<meta name="description" content="Une page">`,
		`<time class="page-date">March 5, 2024</time>`,
		`<nav class="toc"`,
		"<h1>Bonjour</h1>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}
}

func TestPageRenderer_RenderCanceled(t *testing.T) {
	t.Parallel()

	r, err := newPageRenderer(config.DefaultConfig(), testNow)
	if err != nil {
		t.Fatalf("newPageRenderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.render(ctx, &md2html.Result{HTML: "<p>x</p>"}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestResolveStyle_Empty(t *testing.T) {
	t.Parallel()

	css, err := resolveStyle("", assets.NewEmbeddedLoader())
	if err != nil || css != "" {
		t.Errorf("resolveStyle(\"\") = %q, %v; want empty", css, err)
	}
}
