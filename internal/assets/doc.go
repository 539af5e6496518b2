// Package assets provides the page template and CSS styles used to wrap
// rendered markdown fragments into complete HTML pages.
// Assets can be loaded from embedded files or custom filesystem paths.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in styles (default, minimal) and the
// page template embedded at compile time.
//
// FilesystemLoader allows users to provide custom assets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the CLI. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the asset
// is not found. This enables overriding specific assets while keeping defaults.
//
// # Directory Structure
//
// Assets are organized by type:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # CSS styles (e.g., default.css)
//	└── templates/
//	    └── {name}.html          # Page templates (e.g., page.html)
//
// # Code Highlighting
//
// Fenced code blocks carry chroma CSS classes. HighlightCSS generates the
// matching stylesheet for any registered chroma style.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
