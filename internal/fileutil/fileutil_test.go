package fileutil_test

// Notes:
// - WriteFileAtomic write/close/chmod error branches are not tested because
//   triggering disk failures is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic page writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")

	if err := fileutil.WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestWriteFileAtomic_Errors(t *testing.T) {
	t.Parallel()

	if err := fileutil.WriteFileAtomic("", nil, 0o644); !errors.Is(err, fileutil.ErrEmptyPath) {
		t.Errorf("empty path error = %v, want ErrEmptyPath", err)
	}

	missingDir := filepath.Join(t.TempDir(), "missing", "page.html")
	if err := fileutil.WriteFileAtomic(missingDir, []byte("x"), 0o644); err == nil {
		t.Error("expected error when directory does not exist")
	}
}

// ---------------------------------------------------------------------------
// TestReadIfExists - Optional files
// ---------------------------------------------------------------------------

func TestReadIfExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "_references.md")
	if err := os.WriteFile(path, []byte("[a]: b"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, ok, err := fileutil.ReadIfExists(path)
	if err != nil || !ok || string(data) != "[a]: b" {
		t.Errorf("ReadIfExists(existing) = %q, %v, %v", data, ok, err)
	}

	data, ok, err = fileutil.ReadIfExists(filepath.Join(dir, "nope.md"))
	if err != nil || ok || data != nil {
		t.Errorf("ReadIfExists(missing) = %q, %v, %v", data, ok, err)
	}

	if _, _, err := fileutil.ReadIfExists(dir); err == nil {
		t.Error("ReadIfExists(directory) expected error")
	}
}

// ---------------------------------------------------------------------------
// Path predicates
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestPathPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path         string
		wantFilePath bool
		wantMarkdown bool
		wantPartial  bool
	}{
		{"site", false, false, false},
		{"./md2html.yaml", true, false, false},
		{`C:\docs\a.md`, true, true, false},
		{"docs/guide.md", true, true, false},
		{"README.MARKDOWN", false, true, false},
		{"docs/_references.md", true, true, true},
		{"_draft.md", false, true, true},
		{"notes.txt", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.path); got != tt.wantFilePath {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.path, got, tt.wantFilePath)
			}
			if got := fileutil.IsMarkdown(tt.path); got != tt.wantMarkdown {
				t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.wantMarkdown)
			}
			if got := fileutil.IsPartial(tt.path); got != tt.wantPartial {
				t.Errorf("IsPartial(%q) = %v, want %v", tt.path, got, tt.wantPartial)
			}
		})
	}
}
