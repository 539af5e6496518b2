package assets

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// HighlightCSS returns the stylesheet for chroma's class-based output in
// the named style (e.g. "github", "monokai", "dracula").
// Returns ErrHighlightStyleNotFound for names chroma does not know.
func HighlightCSS(name string) (string, error) {
	style, ok := chromastyles.Registry[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrHighlightStyleNotFound, name)
	}

	var b strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&b, style); err != nil {
		return "", fmt.Errorf("writing highlight css: %w", err)
	}
	return b.String(), nil
}

// HighlightStyles lists the chroma style names accepted by HighlightCSS.
func HighlightStyles() []string {
	return chromastyles.Names()
}
