package main

import (
	"log/slog"
	"sort"
	"strings"
)

// backlinks counts, for every converted page, how many other pages link to
// it. Link targets are page keys, the same flat slugs the pages are written
// as. Links to pages outside the batch and self-links are ignored.
func backlinks(results []ConversionResult) map[string]int {
	counts := make(map[string]int, len(results))
	for _, r := range results {
		if r.Err == nil {
			counts[r.Page] = 0
		}
	}

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		seen := make(map[string]bool)
		for _, link := range r.LinksTo {
			target, _, _ := strings.Cut(link, "#")
			if target == r.Page || seen[target] {
				continue
			}
			if _, ok := counts[target]; ok {
				counts[target]++
				seen[target] = true
			}
		}
	}
	return counts
}

// logBacklinks logs the inbound link count of each page at debug level,
// sorted by page.
func logBacklinks(logger *slog.Logger, results []ConversionResult) {
	counts := backlinks(results)
	pages := make([]string, 0, len(counts))
	for p := range counts {
		pages = append(pages, p)
	}
	sort.Strings(pages)

	for _, p := range pages {
		logger.Debug("backlinks", slog.String("page", p), slog.Int("inbound", counts[p]))
	}
}
