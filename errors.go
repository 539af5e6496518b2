package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown          = errors.New("markdown content cannot be empty")
	ErrHTMLConversion         = pipeline.ErrHTMLConversion
	ErrInvalidFrontmatter     = frontmatter.ErrInvalidFrontmatter
	ErrInvalidReferencesFile  = errors.New("invalid references file name")
	ErrReadFile               = errors.New("failed to read markdown file")
	ErrReferences             = errors.New("failed to load references")
	ErrInvalidDescriptionSize = errors.New("invalid description length")
)
