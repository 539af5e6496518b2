package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// htmlExt is the extension of generated pages.
const htmlExt = ".html"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Page       string // Slug of the path relative to the input root, e.g. "guide-getting-started"
}

// discoverFiles finds all markdown files to convert.
// Directories are walked recursively. Hidden directories and partials
// (files starting with "_") are skipped. A partial given explicitly as
// the input file is converted.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, ""),
			Page:       pageKey(inputPath, ""),
		}}, nil
	}

	var files []FileToConvert
	seen := make(map[string]string)
	err = filepath.WalkDir(inputPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", p, err)
		}
		if d.IsDir() {
			if p != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !fileutil.IsMarkdown(p) || fileutil.IsPartial(p) {
			return nil
		}

		outPath := resolveOutputPath(p, outputDir, inputPath)
		if prev, ok := seen[outPath]; ok {
			return fmt.Errorf("%w: %s and %s both become %s", ErrDuplicateOutput, prev, p, outPath)
		}
		seen[outPath] = p

		files = append(files, FileToConvert{
			InputPath:  p,
			OutputPath: outPath,
			Page:       pageKey(p, inputPath),
		})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
// Pages are written flat: "guide/Getting Started.md" below baseInputDir
// becomes "guide-getting-started.html", the name FixInternalLinks gives
// links to it. Without outputDir, pages land in baseInputDir (or next to
// a single input file).
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	if strings.HasSuffix(outputDir, htmlExt) {
		return outputDir
	}

	name := pageKey(inputPath, baseInputDir) + htmlExt
	if outputDir != "" {
		return filepath.Join(outputDir, name)
	}
	if baseInputDir != "" {
		return filepath.Join(baseInputDir, name)
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}

// pageKey slugifies the path of a markdown file relative to base, without
// its extension. An empty base uses the file name alone. Keys without any
// letter or digit fall back to "index".
func pageKey(inputPath, base string) string {
	rel := filepath.Base(inputPath)
	if base != "" {
		if r, err := filepath.Rel(base, inputPath); err == nil {
			rel = r
		}
	}
	rel = strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
	if slug := pipeline.Slugify(rel); slug != "" {
		return slug
	}
	return "index"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(p string) error {
	if !fileutil.IsMarkdown(p) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(p))
	}
	return nil
}

// metadataPath returns the JSON metadata path for an HTML output path.
func metadataPath(htmlPath string) string {
	return strings.TrimSuffix(htmlPath, htmlExt) + ".json"
}
