// Package pipeline implements the Markdown-to-HTML stage of the site generator.
//
// The package is split into the conversion itself and the passes that run
// on its output:
//   - Markdown preprocessing (line ending normalization)
//   - Markdown to HTML conversion via Goldmark with heading anchors,
//     figures, alerts, wikilinks, ==highlight== marks and emoji shortcodes
//   - Internal link rewriting to site-relative .html targets
//   - Table of contents extraction from rendered headings
//   - Detection of unresolved reference-style links
//   - Title and description extraction for page metadata
//
// The post-render passes work on HTML text with precompiled regular
// expressions so they can run on any HTML fragment, including fragments
// produced outside this package.
package pipeline
