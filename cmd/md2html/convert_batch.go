package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	ConvertFile(ctx context.Context, path string) (*md2html.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2html.Converter)(nil)

// batchParams groups parameters shared across batch/file conversion.
type batchParams struct {
	pages   *pageRenderer // nil writes bare fragments
	json    bool
	workers int
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Page       string
	LinksTo    []string
	Err        error
	Duration   time.Duration
}

// pageMetadata is written to <page>.json with --json.
type pageMetadata struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Frontmatter map[string]any `json:"frontmatter"`
	TOC         string         `json:"toc"`
	LinksTo     []string       `json:"links_to"`
}

// convertBatch processes files concurrently, at most params.workers at a time.
// One failing file does not stop the others; a canceled context does.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, params *batchParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))

	var g errgroup.Group
	g.SetLimit(max(params.workers, 1))
	for i, f := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				results[i] = ConversionResult{
					InputPath: f.InputPath,
					Page:      f.Page,
					Err:       ctx.Err(),
				}
				return nil
			}
			results[i] = convertFile(ctx, conv, f, params)
			return nil
		})
	}
	_ = g.Wait() // Errors are carried per result

	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *batchParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
		Page:       f.Page,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	res, err := conv.ConvertFile(ctx, f.InputPath)
	if err != nil {
		return fail(err)
	}
	result.LinksTo = res.LinksTo

	content := []byte(res.HTML)
	if params.pages != nil {
		content, err = params.pages.render(ctx, res)
		if err != nil {
			return fail(err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err))
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, content, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}

	if params.json {
		if err := writeMetadata(metadataPath(f.OutputPath), res); err != nil {
			return fail(err)
		}
	}

	result.Duration = time.Since(start)
	return result
}

// writeMetadata writes the page metadata as indented JSON.
func writeMetadata(path string, res *md2html.Result) error {
	meta := pageMetadata{
		Title:       res.Title,
		Description: res.Description,
		Frontmatter: res.Frontmatter,
		TOC:         res.TOC,
		LinksTo:     res.LinksTo,
	}
	if meta.Frontmatter == nil {
		meta.Frontmatter = map[string]any{}
	}
	if meta.LinksTo == nil {
		meta.LinksTo = []string{}
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, append(data, '\n'), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Returns the number of failed conversions.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// batchError reports failed conversions. errors.Is matches
// ErrConversionFailed and every per-file cause, so the exit code reflects
// what went wrong.
type batchError struct {
	failed int
	total  int
	causes error
}

func newBatchError(results []ConversionResult) *batchError {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return &batchError{failed: len(errs), total: len(results), causes: errors.Join(errs...)}
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%s: %d of %d page(s)", ErrConversionFailed, e.failed, e.total)
}

func (e *batchError) Unwrap() []error {
	return []error{ErrConversionFailed, e.causes}
}
