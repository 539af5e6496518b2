package main

// Notes:
// - exitCodeFor: we test sentinel errors from the md2html, config, assets and
//   logging packages, plus wrapped errors to verify the errors.Is() chain.
// - batchError: a batch maps to the exit code of its per-file causes.
// - hintFor: we test that each hinted error gets a hint and others get none.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/logging"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read markdown", md2html.ErrReadFile, ExitIO},
		{"references", md2html.ErrReferences, ExitIO},
		{"asset read", assets.ErrAssetRead, ExitIO},
		{"read asset file", ErrReadAsset, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no markdown files", ErrNoMarkdownFiles, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config not found with paths", &config.NotFoundError{Name: "site"}, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"invalid log level", logging.ErrInvalidLevel, ExitUsage},
		{"invalid log format", logging.ErrInvalidFormat, ExitUsage},
		{"invalid references file", md2html.ErrInvalidReferencesFile, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"template not found", assets.ErrTemplateNotFound, ExitUsage},
		{"highlight style not found", assets.ErrHighlightStyleNotFound, ExitUsage},
		{"template parse", assets.ErrTemplateParse, ExitUsage},
		{"path traversal", assets.ErrPathTraversal, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"duplicate output", ErrDuplicateOutput, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"invalid frontmatter", md2html.ErrInvalidFrontmatter, ExitGeneral},
		{"page render", assets.ErrPageRender, ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeFor_BatchError - Batch failures carry their causes
// ---------------------------------------------------------------------------

func TestExitCodeFor_BatchError(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md"},
		{InputPath: "b.md", Err: fmt.Errorf("%w: %w", md2html.ErrReadFile, os.ErrPermission)},
	}
	err := newBatchError(results)

	if !errors.Is(err, ErrConversionFailed) {
		t.Error("batch error should match ErrConversionFailed")
	}
	if got := exitCodeFor(err); got != ExitIO {
		t.Errorf("exitCodeFor(batch) = %d, want %d", got, ExitIO)
	}
	if want := "conversion failed: 1 of 2 page(s)"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	general := newBatchError([]ConversionResult{{Err: md2html.ErrInvalidFrontmatter}})
	if got := exitCodeFor(general); got != ExitGeneral {
		t.Errorf("exitCodeFor(frontmatter batch) = %d, want %d", got, ExitGeneral)
	}
}

// ---------------------------------------------------------------------------
// TestExitCodes_Conventions - Unix exit code conventions
// ---------------------------------------------------------------------------

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, custom codes must be < 126", ExitIO)
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Actionable hints
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		err          error
		wantContains string
	}{
		{
			name:         "config not found suggests app dir",
			err:          fmt.Errorf("loading config: %w", &config.NotFoundError{Name: "site", Tried: []string{"site.yaml", "/home/u/.config/go-md2html/site.yaml"}}),
			wantContains: "/home/u/.config/go-md2html/site.yaml",
		},
		{
			name:         "style not found lists embedded styles",
			err:          fmt.Errorf("%w: fancy", assets.ErrStyleNotFound),
			wantContains: "minimal",
		},
		{
			name:         "highlight style lists chroma styles",
			err:          assets.ErrHighlightStyleNotFound,
			wantContains: "monokai",
		},
		{
			name:         "frontmatter",
			err:          fmt.Errorf("parsing frontmatter: %w", md2html.ErrInvalidFrontmatter),
			wantContains: "delimiter",
		},
		{
			name:         "timeout",
			err:          context.DeadlineExceeded,
			wantContains: "--timeout",
		},
		{
			name:         "no markdown files",
			err:          ErrNoMarkdownFiles,
			wantContains: "_",
		},
		{
			name:         "write output",
			err:          ErrWriteOutput,
			wantContains: "writable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := hintFor(tt.err)
			if !strings.Contains(got, "hint:") || !strings.Contains(got, tt.wantContains) {
				t.Errorf("hintFor() = %q, want hint containing %q", got, tt.wantContains)
			}
		})
	}

	t.Run("no hint for other errors", func(t *testing.T) {
		t.Parallel()
		if got := hintFor(errors.New("boom")); got != "" {
			t.Errorf("hintFor() = %q, want empty", got)
		}
	})
}
