// Package logging provides structured logging for md2html using slog.
//
// Text output goes through a compact handler that colorizes levels and
// keys on terminals; JSON output uses the standard library handler so that
// batch runs can be piped into log processors.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Warn("reference missing", "page", "guide.md", "label", "go")
//
// Library code never logs unless given a logger; [NewDiscard] is the
// default. Tests use [ForTest] to route records into t.Log.
package logging
