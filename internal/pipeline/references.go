package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/yuin/goldmark/ast"
)

// DefaultReferencesFile holds link definitions shared by every page of a
// directory.
const DefaultReferencesFile = "_references.md"

// bracketPattern captures [label] and [text][label] left as text after
// parsing, i.e. references without a definition.
var bracketPattern = regexp.MustCompile(`\[([^\[\]]+)\](?:\[([^\[\]]*)\])?`)

var escapedBrackets = strings.NewReplacer(`\[`, "  ", `\]`, "  ")

// AppendReferences appends the link definitions of referencesPath to
// content so that pages can use [label] links defined once per directory.
// A missing references file is not an error.
func AppendReferences(content, referencesPath string) (string, error) {
	refs, ok, err := fileutil.ReadIfExists(referencesPath)
	if err != nil {
		return "", fmt.Errorf("reading references: %w", err)
	}
	if !ok {
		return content, nil
	}
	return content + "\n\n" + string(refs), nil
}

// MissingReferences returns the labels of reference links that did not
// resolve to a definition, in order of first appearance. Code, raw HTML
// and resolved links are not inspected.
func MissingReferences(doc ast.Node, source []byte) []string {
	var (
		missing []string
		seen    = make(map[string]bool)
		buf     strings.Builder
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		for _, m := range bracketPattern.FindAllStringSubmatch(escapedBrackets.Replace(buf.String()), -1) {
			label := m[1]
			if m[2] != "" {
				label = m[2]
			}
			label = strings.TrimSpace(label)
			if IsAllowedLabel(label) || seen[label] {
				continue
			}
			seen[label] = true
			missing = append(missing, label)
		}
		buf.Reset()
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n.Type() == ast.TypeBlock {
			flush()
			return ast.WalkContinue, nil
		}
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Link, *ast.Image, *ast.AutoLink, *ast.CodeSpan, *ast.RawHTML:
			buf.WriteByte(' ')
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	flush()

	return missing
}

// IsAllowedLabel reports whether a bracketed label is expected to stay
// unresolved: URLs, callouts, anchors, footnotes, absolute paths and
// single character task markers.
func IsAllowedLabel(label string) bool {
	if label == "" {
		return true
	}
	for _, prefix := range []string{"http", "!", "#", "^", "/"} {
		if strings.HasPrefix(label, prefix) {
			return true
		}
	}
	if utf8.RuneCountInString(label) == 1 {
		r, _ := utf8.DecodeRuneInString(label)
		return !unicode.IsDigit(r)
	}
	return false
}
