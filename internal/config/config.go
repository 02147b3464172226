// Package config provides configuration types, defaults, and persistence for
// golearn. Config only themes output; lesson registration stays compiled in.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FelixChenT/go-learn-kimi/internal/log"
)

// Config holds all configuration options for golearn.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	// MarkdownStyle selects the glamour style for `golearn doc`.
	// "dark", "light", or "" to detect from the terminal background.
	MarkdownStyle string `mapstructure:"markdown_style"`

	// DocWidth is the word-wrap width for rendered notes.
	DocWidth int `mapstructure:"doc_width"`
}

// ThemeConfig holds the color tokens used by the browse picker.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"` // hex color for the selected row
	Subtle    string `mapstructure:"subtle"`    // hex color for secondary text
	Error     string `mapstructure:"error"`     // hex color for error text
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			MarkdownStyle: "", // detect from terminal background
			DocWidth:      80,
		},
		Theme: ThemeConfig{
			Highlight: "#54A0FF",
			Subtle:    "#6C6C6C",
			Error:     "#FF8787",
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with
// comments.
func DefaultConfigTemplate() string {
	return `# golearn configuration

# UI settings
ui:
  # markdown_style: dark  # Notes rendering style: "dark", "light", or omit to detect
  doc_width: 80           # Word-wrap width for 'golearn doc'

# Theme colors for the browse picker
theme:
  highlight: "#54A0FF"  # Selected row
  subtle: "#6C6C6C"     # Secondary text
  error: "#FF8787"      # Error text
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// ValidMarkdownStyle reports whether style is one `golearn doc` accepts.
func ValidMarkdownStyle(style string) bool {
	switch style {
	case "", "dark", "light":
		return true
	default:
		return false
	}
}
