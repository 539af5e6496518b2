package logging

// Notes:
// - TestSupportsColor cannot use t.Parallel() because it uses t.Setenv().
// - Color output itself is not asserted: it requires a real terminal.

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Warn("reference missing", "label", "go", "page", "docs/guide.md", "hint", "add it")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug record written at info level: %q", got)
	}
	for _, want := range []string{"WARN", "reference missing", "label=go", "page=docs/guide.md", `hint="add it"`} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected a single line, got %q", got)
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Output: &buf}).
		With("run", 1).
		WithGroup("page")

	logger.Debug("converted", "path", "a.md", "empty", "")

	got := buf.String()
	for _, want := range []string{"DEBUG", "run=1", "page.path=a.md", `page.empty=""`} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})
	logger.Info("converted", "pages", 3)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "converted" || record["pages"] != float64(3) {
		t.Errorf("record = %v", record)
	}
}

func TestNewDiscard(t *testing.T) {
	t.Parallel()

	logger := NewDiscard()
	logger.Error("ignored")
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("discard logger should not be enabled")
	}
}

func TestForTest(t *testing.T) {
	t.Parallel()

	logger := ForTest(t)
	logger.Debug("visible with -v")
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("ForTest logger should log at debug level")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLevel) {
					t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidLevel", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Format{"": FormatText, "text": FormatText, "JSON": FormatJSON} {
		got, err := ParseFormat(input)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v", input, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseFormat(xml) error = %v, want ErrInvalidFormat", err)
	}
}

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{"NO_COLOR prevents color", map[string]string{"NO_COLOR": "1"}, true, false},
		{"TERM=dumb prevents color", map[string]string{"TERM": "dumb"}, true, false},
		{"non-TTY prevents color", map[string]string{"TERM": "xterm"}, false, false},
		{"TTY gets color", map[string]string{"TERM": "xterm"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("TERM", "")
			unsetNoColor(t)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := supportsColor(tt.isTTY); got != tt.want {
				t.Errorf("supportsColor() = %v, want %v (env=%v)", got, tt.want, tt.env)
			}
		})
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	t.Parallel()

	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY should return false for a buffer")
	}
}

// unsetNoColor removes NO_COLOR after t.Setenv registered its restoration,
// since presence alone disables colors.
func unsetNoColor(t *testing.T) {
	t.Helper()
	if err := os.Unsetenv("NO_COLOR"); err != nil {
		t.Fatal(err)
	}
}
