// Package config loads the site configuration: the document manifest,
// the page template location, and styling options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxNameLength  = 100  // Document set name
	MaxPathLength  = 2048 // Template path, directories, style path
	MaxFilesPerSet = 1000 // Manifest entries per set
)

// Config holds all configuration for a site build.
type Config struct {
	Template TemplateConfig `yaml:"template"`
	CSS      CSSConfig      `yaml:"css"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Assets   AssetsConfig   `yaml:"assets"`
	Sets     []SetConfig    `yaml:"sets"`
}

// TemplateConfig locates the page template.
type TemplateConfig struct {
	Path string `yaml:"path"` // File path; empty = embedded default template
}

// CSSConfig defines page styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Asset style name or CSS file path (empty = no CSS)
}

// MarkdownConfig defines rendering options.
type MarkdownConfig struct {
	HardWraps bool `yaml:"hardWraps"` // Render single newlines as <br>
	RawHTML   bool `yaml:"rawHTML"`   // Pass raw HTML blocks through to output
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// SetConfig names one ordered list of documents and its root pair.
type SetConfig struct {
	Name      string   `yaml:"name"`
	SourceDir string   `yaml:"sourceDir"`
	OutputDir string   `yaml:"outputDir"`
	Files     []string `yaml:"files"`
}

// DefaultConfig returns a configuration with an empty manifest, the
// embedded page template, and no stylesheet.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and per-set bounds. Full manifest
// semantics (extensions, traversal, duplicates) are validated by the
// library when the manifest is built.
func (c *Config) Validate() error {
	if err := validateFieldLength("template.path", c.Template.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.style", c.CSS.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	for i, set := range c.Sets {
		prefix := fmt.Sprintf("sets[%d]", i)
		if err := validateFieldLength(prefix+".name", set.Name, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(prefix+".sourceDir", set.SourceDir, MaxPathLength); err != nil {
			return err
		}
		if err := validateFieldLength(prefix+".outputDir", set.OutputDir, MaxPathLength); err != nil {
			return err
		}
		if len(set.Files) > MaxFilesPerSet {
			return fmt.Errorf("%s.files: %d entries (max %d)", prefix, len(set.Files), MaxFilesPerSet)
		}
		for j, name := range set.Files {
			if err := validateFieldLength(fmt.Sprintf("%s.files[%d]", prefix, j), name, MaxPathLength); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
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

	if isFilePath(nameOrPath) {
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2site/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(home, ".config", "go-md2site", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
