package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// wikilinks parses [[Target]] and [[Target|Label]] into regular links whose
// destination is the raw target. FixInternalLinks then maps the target to
// its generated page like any other link between pages.
type wikilinks struct {
	titleBeforePipe bool
}

func (e wikilinks) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		// Ahead of the standard link parser (200).
		util.Prioritized(&wikilinkParser{titleBeforePipe: e.titleBeforePipe}, 199),
	))
}

type wikilinkParser struct {
	titleBeforePipe bool
}

func (p *wikilinkParser) Trigger() []byte {
	return []byte{'['}
}

func (p *wikilinkParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, seg := block.PeekLine()
	if !bytes.HasPrefix(line, []byte("[[")) {
		return nil
	}
	end := bytes.Index(line[2:], []byte("]]"))
	if end <= 0 {
		return nil
	}
	inner := line[2 : 2+end]
	if bytes.ContainsAny(inner, "[]\n") {
		return nil
	}

	target, label := inner, inner
	labelStart := 2
	if i := bytes.IndexByte(inner, '|'); i >= 0 {
		if p.titleBeforePipe {
			label, target = inner[:i], inner[i+1:]
		} else {
			target, label = inner[:i], inner[i+1:]
			labelStart += i + 1
		}
	}
	target = util.TrimRightSpace(util.TrimLeftSpace(target))
	if len(target) == 0 || len(label) == 0 {
		return nil
	}

	link := ast.NewLink()
	link.Destination = append([]byte(nil), target...)
	link.SetAttributeString("data-wikilink", []byte("true"))
	start := seg.Start + labelStart
	link.AppendChild(link, ast.NewTextSegment(text.NewSegment(start, start+len(label))))

	block.Advance(end + 4)
	return link
}
