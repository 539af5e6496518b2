package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver == nil {
			t.Fatal("NewAssetResolver() returned nil")
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()

		resolver, err := NewAssetResolver(tmpDir)
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_LoadStyle_EmbeddedOnly(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("loads embedded style", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("minimal")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got == "" {
			t.Error("LoadStyle() returned empty content")
		}
	})

	t.Run("returns error for nonexistent", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadStyle("nonexistent-xyz")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})
}

func TestAssetResolver_LoadStyle_CustomWithFallback(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	stylesDir := filepath.Join(tmpDir, "styles")
	if err := os.MkdirAll(stylesDir, 0755); err != nil {
		t.Fatalf("failed to create styles dir: %v", err)
	}

	// Override the embedded default style
	customCSS := "/* custom default */"
	if err := os.WriteFile(filepath.Join(stylesDir, "default.css"), []byte(customCSS), 0644); err != nil {
		t.Fatalf("failed to write CSS file: %v", err)
	}

	resolver, err := NewAssetResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("custom style shadows embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("default")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got != customCSS {
			t.Errorf("LoadStyle() = %q, want %q", got, customCSS)
		}
	})

	t.Run("falls back to embedded when custom not found", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("minimal")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got == "" {
			t.Error("LoadStyle() returned empty content")
		}
	})

	t.Run("missing everywhere returns ErrStyleNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadStyle("nonexistent-xyz")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("invalid name does not fall back", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadStyle("../default")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestAssetResolver_LoadTemplate(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	templatesDir := filepath.Join(tmpDir, "templates")
	if err := os.MkdirAll(templatesDir, 0755); err != nil {
		t.Fatalf("failed to create templates dir: %v", err)
	}
	custom := "<html><body>{{.Content}}</body></html>"
	if err := os.WriteFile(filepath.Join(templatesDir, "bare.html"), []byte(custom), 0644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}

	resolver, err := NewAssetResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("loads custom template", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate("bare")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != custom {
			t.Errorf("LoadTemplate() = %q, want %q", got, custom)
		}
	})

	t.Run("falls back to embedded page template", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate(DefaultTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got == custom || got == "" {
			t.Errorf("LoadTemplate(%q) should come from embedded assets", DefaultTemplateName)
		}
	})

	t.Run("returns ErrTemplateNotFound when missing everywhere", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadTemplate("missing")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})
}

func TestAssetResolver_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()

	var _ AssetLoader = (*AssetResolver)(nil)
}
