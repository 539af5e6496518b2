package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring config files.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	Style      string // MD2HTML_STYLE: CSS style name or path
	Timeout    string // MD2HTML_TIMEOUT: per-page conversion timeout
	InputDir   string // MD2HTML_INPUT_DIR: default input directory
	OutputDir  string // MD2HTML_OUTPUT_DIR: default output directory
	AssetPath  string // MD2HTML_ASSET_PATH: custom asset directory
	Workers    int    // MD2HTML_WORKERS: parallel workers
	LogLevel   string // MD2HTML_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // MD2HTML_LOG_FORMAT: text, json
}

// envPrefix is shared by every variable md2html reads.
const envPrefix = "MD2HTML_"

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":     true,
	"MD2HTML_STYLE":      true,
	"MD2HTML_TIMEOUT":    true,
	"MD2HTML_INPUT_DIR":  true,
	"MD2HTML_OUTPUT_DIR": true,
	"MD2HTML_ASSET_PATH": true,
	"MD2HTML_WORKERS":    true,
	"MD2HTML_LOG_LEVEL":  true,
	"MD2HTML_LOG_FORMAT": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MD2HTML_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
		Style:      os.Getenv("MD2HTML_STYLE"),
		Timeout:    os.Getenv("MD2HTML_TIMEOUT"),
		InputDir:   os.Getenv("MD2HTML_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2HTML_OUTPUT_DIR"),
		AssetPath:  os.Getenv("MD2HTML_ASSET_PATH"),
		LogLevel:   os.Getenv("MD2HTML_LOG_LEVEL"),
		LogFormat:  os.Getenv("MD2HTML_LOG_FORMAT"),
	}

	// Invalid or non-positive values are ignored (auto).
	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_OUTPUTDIR instead of MD2HTML_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Page.Style = env.Style
	}
	if env.Timeout != "" {
		cfg.Timeout = env.Timeout
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Page.AssetsPath = env.AssetPath
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
}
