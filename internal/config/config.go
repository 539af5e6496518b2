package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength       = 4096 // PATH_MAX on Linux
	MaxNameLength       = 100  // Style, template or highlight style name
	MaxDateFormatLength = 50   // "DD/MM/YYYY" or a Go layout
	MaxLanguageLength   = 35   // BCP 47 tag
	MaxTitleLength      = 200  // Site title
)

// AppName is the directory name searched under the XDG config dirs.
const AppName = "go-md2html"

// Config holds all configuration for site generation.
type Config struct {
	Input      InputConfig      `yaml:"input" toml:"input"`
	Output     OutputConfig     `yaml:"output" toml:"output"`
	Markdown   pipeline.Options `yaml:"markdown" toml:"markdown"`
	References ReferencesConfig `yaml:"references" toml:"references"`
	Page       PageConfig       `yaml:"page" toml:"page"`
	Workers    int              `yaml:"workers" toml:"workers"` // 0 = auto
	Timeout    string           `yaml:"timeout" toml:"timeout"` // Go duration, e.g. "30s" (empty = converter default)
	Log        LogConfig        `yaml:"log" toml:"log"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir" toml:"defaultDir"` // Default content directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir" toml:"defaultDir"` // Default output directory (empty = next to source)
	Fragment   bool   `yaml:"fragment" toml:"fragment"`     // Write bare fragments instead of full pages
	JSON       bool   `yaml:"json" toml:"json"`             // Write <page>.json metadata next to each page
}

// ReferencesConfig defines the shared reference-definitions file.
type ReferencesConfig struct {
	File string `yaml:"file" toml:"file"` // Base name looked up in each source dir (default: _references.md)
}

// PageConfig defines how fragments are wrapped into full pages.
type PageConfig struct {
	Title          string `yaml:"title" toml:"title"`                   // Site title appended to page titles
	Language       string `yaml:"language" toml:"language"`             // <html lang> (default: "en")
	Style          string `yaml:"style" toml:"style"`                   // Name or path of the page CSS (default: "default")
	HighlightStyle string `yaml:"highlightStyle" toml:"highlightStyle"` // Chroma style for code blocks (default: "github")
	Template       string `yaml:"template" toml:"template"`             // Name or path of the page template (default: "page")
	DateFormat     string `yaml:"dateFormat" toml:"dateFormat"`         // Display format for frontmatter dates
	AssetsPath     string `yaml:"assetsPath" toml:"assetsPath"`         // Directory overriding embedded assets (empty = embedded)
}

// LogConfig defines logger options.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error (default: info)
	Format string `yaml:"format" toml:"format"` // text or json (default: text)
}

// Validate checks field lengths and value ranges.
// Returns ErrFieldTooLong or ErrInvalidValue wrapped with the field name.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"references.file", c.References.File, MaxNameLength},
		{"page.title", c.Page.Title, MaxTitleLength},
		{"page.language", c.Page.Language, MaxLanguageLength},
		{"page.style", c.Page.Style, MaxPathLength},
		{"page.highlightStyle", c.Page.HighlightStyle, MaxNameLength},
		{"page.template", c.Page.Template, MaxPathLength},
		{"page.dateFormat", c.Page.DateFormat, MaxDateFormatLength},
		{"page.assetsPath", c.Page.AssetsPath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if strings.ContainsAny(c.References.File, "/\\") {
		return fmt.Errorf("%w: references.file must be a file name, got %q", ErrInvalidValue, c.References.File)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidValue, c.Workers)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q (use debug, info, warn, error)", ErrInvalidValue, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (use text, json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty value returns 0, which keeps
// the converter default.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
// LoadConfig decodes on top of it, so omitted keys keep these values.
func DefaultConfig() *Config {
	return &Config{
		Markdown:   pipeline.DefaultOptions(),
		References: ReferencesConfig{File: pipeline.DefaultReferencesFile},
		Page: PageConfig{
			Language:       "en",
			Style:          "default",
			HighlightStyle: "github",
			Template:       "page",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decode(configPath, data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode picks the decoder from the file extension. Unknown keys are
// rejected by both decoders.
func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	}
	return yamlutil.UnmarshalStrict(data, cfg)
}

// configExtensions lists the extensions tried for a config name, in order.
var configExtensions = []string{".yaml", ".yml", ".toml"}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries locations in order: current directory, $XDG_CONFIG_HOME/go-md2html/,
// then each of $XDG_CONFIG_DIRS/go-md2html/.
func resolveConfigPath(name string) (string, error) {
	dirs := append([]string{"", filepath.Join(xdg.ConfigHome, AppName)}, configDirs()...)
	triedPaths := make([]string, 0, len(configExtensions)*len(dirs))

	for _, dir := range dirs {
		for _, ext := range configExtensions {
			path := name + ext
			if dir != "" {
				path = filepath.Join(dir, path)
			}
			if fileutil.FileExists(path) {
				return path, nil
			}
			triedPaths = append(triedPaths, path)
		}
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}

func configDirs() []string {
	dirs := make([]string, 0, len(xdg.ConfigDirs))
	for _, d := range xdg.ConfigDirs {
		dirs = append(dirs, filepath.Join(d, AppName))
	}
	return dirs
}

// NotFoundError lists the locations searched for a config name.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }
