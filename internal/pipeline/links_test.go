package pipeline

import (
	"reflect"
	"testing"
)

func TestFixInternalLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "markdown page",
			input:    `<a href="test.md">test.md</a>`,
			expected: `<a href="test.html">test</a>`,
		},
		{
			name:     "html page keeps extension once",
			input:    `<a href="guide.html">guide.html</a>`,
			expected: `<a href="guide.html">guide</a>`,
		},
		{
			name:     "page with fragment",
			input:    `<a href="Other Page.md#Some Section">Other Page.md#Some Section</a>`,
			expected: `<a href="other-page.html#some-section">Other Page.md > Some Section</a>`,
		},
		{
			name:     "fragment only",
			input:    `<a href="#Intro Part">#Intro Part</a>`,
			expected: `<a href="#intro-part">Intro Part</a>`,
		},
		{
			name:     "percent encoded path",
			input:    `<a href="My%20Page.md">My Page</a>`,
			expected: `<a href="my-page.html">My Page</a>`,
		},
		{
			name:     "other attributes preserved",
			input:    `<a title="t" href="a.md" data-x="1">a.md</a>`,
			expected: `<a title="t" href="a.html" data-x="1">a</a>`,
		},
		{
			name:     "query string dropped",
			input:    `<a href="page.md?v=2#Top">x</a>`,
			expected: `<a href="page.html#top">x</a>`,
		},
		{
			name:     "query string without fragment",
			input:    `<a href="Some Page.md?draft=true">x</a>`,
			expected: `<a href="some-page.html">x</a>`,
		},
		{
			name:     "page whose name contains footnote-ref",
			input:    `<a href="footnote-reference.md">notes</a>`,
			expected: `<a href="footnote-reference.html">notes</a>`,
		},
		{
			name:     "several links",
			input:    `<p><a href="a.md">a</a> and <a href="b.md">b</a></p>`,
			expected: `<p><a href="a.html">a</a> and <a href="b.html">b</a></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FixInternalLinks(tt.input); got != tt.expected {
				t.Errorf("FixInternalLinks():\ngot:  %q\nwant: %q", got, tt.expected)
			}
		})
	}
}

func TestFixInternalLinks_Unchanged(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"external url":     `<a href="https://example.com/page.md">site</a>`,
		"mailto":           `<a href="mailto:me@example.com">mail</a>`,
		"dot relative":     `<a href="./notes.md">notes</a>`,
		"parent relative":  `<a href="../notes.md">notes</a>`,
		"site absolute":    `<a href="/docs/notes.md">notes</a>`,
		"image":            `<a href="photo.PNG">photo</a>`,
		"archive":          `<a href="release.tar.gz">download</a>`,
		"media with query": `<a href="media/clip.mp4?t=30">clip</a>`,
		"heading anchor":   `<a href="#Intro" aria-hidden="true" class="anchor" id="Intro"></a>`,
		"footnote ref":     `<a href="#fn:1" class="footnote-ref" role="doc-noteref">1</a>`,
		"footnote backref": `<a href="#fnref:1" class="footnote-backref" role="doc-backlink">&#x21a9;&#xfe0e;</a>`,
		"data footnote":    `<a href="#fn-1" id="fnref-1" data-footnote-ref>1</a>`,
		"no anchors":       `<p>plain text</p>`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := FixInternalLinks(input); got != input {
				t.Errorf("FixInternalLinks() = %q, want unchanged", got)
			}
		})
	}
}

func TestFixInternalLinks_MediaExtensions(t *testing.T) {
	t.Parallel()

	files := []string{
		"image.jpg", "image.jpeg", "image.png", "image.gif", "image.webp", "image.svg",
		"image.avif", "image.bmp", "image.tiff", "image.tif", "favicon.ico",
		"document.pdf",
		"video.mp4", "video.mov", "video.avi", "video.mkv", "video.webm",
		"audio.mp3", "audio.wav", "audio.ogg", "audio.flac",
		"archive.zip", "archive.tar", "archive.gz", "archive.7z", "archive.rar",
		"report.doc", "report.docx", "sheet.xls", "sheet.xlsx", "slides.ppt", "slides.pptx",
		"notes.txt", "data.csv", "data.json", "data.xml", "data.yaml", "data.yml", "data.toml",
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			t.Parallel()

			input := `<a href="media/` + file + `">Link</a>`
			if got := FixInternalLinks(input); got != input {
				t.Errorf("FixInternalLinks() = %q, want unchanged", got)
			}
		})
	}
}

func TestLinksTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "no links",
			input:    `<p>nothing</p>`,
			expected: nil,
		},
		{
			name:     "pages in order with fragments",
			input:    `<a href="page.html">p</a><a href="./dir/other.html#sec">o</a><a href="page.html">again</a>`,
			expected: []string{"page", "dir/other#sec", "page"},
		},
		{
			name:     "external html skipped",
			input:    `<a href="https://example.com/a.html">x</a><a href="local.html">l</a>`,
			expected: []string{"local"},
		},
		{
			name:     "non html targets ignored",
			input:    `<a href="#top">top</a><img src="a.png" />`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := LinksTo(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("LinksTo() = %#v, want %#v", got, tt.expected)
			}
		})
	}
}
