package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML pages")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "           Files starting with '_' are partials and are not converted")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (.yaml, .yml, .toml)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-page timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --references <file>   Shared reference definitions (default: _references.md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --unsafe              Keep raw HTML and dangerous URLs")
	fmt.Fprintln(w, "      --sanitize            Sanitize the generated HTML")
	fmt.Fprintln(w, "      --hard-wraps          Render line breaks as <br>")
	fmt.Fprintln(w, "      --typographer         Smart quotes and dashes")
	fmt.Fprintln(w, "      --no-wikilinks        Disable [[wikilinks]]")
	fmt.Fprintln(w, "      --no-emoji            Disable :emoji: shortcodes")
	fmt.Fprintln(w, "      --no-highlight        Disable code syntax highlighting")
	fmt.Fprintln(w, "      --no-figures          Do not wrap images in <figure>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --title <s>           Site title appended to page titles")
	fmt.Fprintln(w, "      --lang <s>            Page language (default: en)")
	fmt.Fprintln(w, "      --style <name|path>   CSS style (default: default)")
	fmt.Fprintln(w, "      --highlight-style <s> Code highlighting style (default: github)")
	fmt.Fprintln(w, "      --template <name|path> Page template (default: page)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ directory")
	fmt.Fprintln(w, "      --date-format <s>     Date format: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Mode:")
	fmt.Fprintln(w, "      --fragment            Write bare HTML fragments, no page template")
	fmt.Fprintln(w, "      --json                Also write <page>.json metadata")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing, debug logs and backlinks")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_STYLE, MD2HTML_TIMEOUT, MD2HTML_INPUT_DIR,")
	fmt.Fprintln(w, "  MD2HTML_OUTPUT_DIR, MD2HTML_ASSET_PATH, MD2HTML_WORKERS,")
	fmt.Fprintln(w, "  MD2HTML_LOG_LEVEL, MD2HTML_LOG_FORMAT")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
