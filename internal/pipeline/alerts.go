package pipeline

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// alertMarker matches the first line of a GitHub alert blockquote.
var alertMarker = regexp.MustCompile(`(?i)^\[!(note|tip|important|warning|caution)\]\s*$`)

// KindAlert is the NodeKind of Alert.
var KindAlert = ast.NewNodeKind("Alert")

// Alert is a blockquote that starts with a [!TYPE] marker line.
type Alert struct {
	ast.BaseBlock
	AlertType string
}

// Kind implements ast.Node.
func (n *Alert) Kind() ast.NodeKind {
	return KindAlert
}

// Dump implements ast.Node.
func (n *Alert) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"AlertType": n.AlertType}, nil)
}

// alerts renders GitHub style callouts:
//
//	> [!WARNING]
//	> Back up your data first.
type alerts struct{}

func (alerts) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&alertTransformer{}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&alertRenderer{}, 500),
	))
}

type alertTransformer struct{}

func (t *alertTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var quotes []*ast.Blockquote
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if q, ok := n.(*ast.Blockquote); ok && entering {
			quotes = append(quotes, q)
		}
		return ast.WalkContinue, nil
	})

	for _, q := range quotes {
		para, ok := q.FirstChild().(*ast.Paragraph)
		if !ok || para.Lines().Len() == 0 {
			continue
		}
		first := para.Lines().At(0)
		m := alertMarker.FindSubmatch(util.TrimRightSpace(first.Value(source)))
		if m == nil {
			continue
		}

		// Drop the inline nodes of the marker line.
		for c := para.FirstChild(); c != nil; {
			next := c.NextSibling()
			if t, ok := c.(*ast.Text); ok && t.Segment.Start < first.Stop {
				para.RemoveChild(para, c)
			}
			c = next
		}
		if para.ChildCount() == 0 {
			q.RemoveChild(q, para)
		}

		alert := &Alert{AlertType: strings.ToLower(string(m[1]))}
		for c := q.FirstChild(); c != nil; {
			next := c.NextSibling()
			alert.AppendChild(alert, c)
			c = next
		}
		q.Parent().ReplaceChild(q.Parent(), q, alert)
	}
}

type alertRenderer struct{}

func (r *alertRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAlert, r.renderAlert)
}

func (r *alertRenderer) renderAlert(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Alert)
	if entering {
		_, _ = w.WriteString(`<div class="markdown-alert markdown-alert-`)
		_, _ = w.WriteString(n.AlertType)
		_, _ = w.WriteString("\">\n")
		_, _ = w.WriteString(`<p class="markdown-alert-title">`)
		_, _ = w.WriteString(strings.ToUpper(n.AlertType[:1]) + n.AlertType[1:])
		_, _ = w.WriteString("</p>\n")
	} else {
		_, _ = w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}
