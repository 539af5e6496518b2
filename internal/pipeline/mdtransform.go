package pipeline

import (
	"context"
	"strings"
)

// MarkdownPreprocessor prepares markdown source before it is parsed.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// LineEndingPreprocessor rewrites CRLF and lone CR line endings to LF so
// that every later stage sees a single line terminator. Markdown syntax
// itself is left to the parser.
type LineEndingPreprocessor struct{}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// PreprocessMarkdown returns content with normalized line endings.
// A canceled context returns content unchanged.
func (LineEndingPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return lineEndings.Replace(content)
}
