// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// MissingReference returns the advice logged for an unresolved reference
// link. Unlike the other hints it is a bare sentence, used as a log attribute.
func MissingReference(label, referencesFile string) string {
	return fmt.Sprintf("add '[%s]: url' to the end of your content file or to the '%s' file", label, referencesFile)
}

// ForMissingReference formats MissingReference for appending to a message.
func ForMissingReference(label, referencesFile string) string {
	return format(MissingReference(label, referencesFile))
}

// ForFrontmatter returns hints for frontmatter decoding errors.
func ForFrontmatter() string {
	return formatHints([]string{
		"close the block with the delimiter that opens it (---, +++ or })",
		"quote values containing ':' or '#'",
	})
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large sites, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains go-md2html) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForNoMarkdownFiles returns hints when a directory has nothing to convert.
func ForNoMarkdownFiles() string {
	return format("only .md and .markdown files are converted; files starting with '_' are skipped")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
