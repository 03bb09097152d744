package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, environment variables, and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	AssetLoader assets.AssetLoader
}

// DefaultEnv returns the production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		AssetLoader: assets.NewEmbeddedLoader(),
	}
}

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML edits.
type envConfig struct {
	ConfigPath string // MD2SITE_CONFIG: config file name or path
	Template   string // MD2SITE_TEMPLATE: page template file path
	Style      string // MD2SITE_STYLE: CSS style name or path
}

// readEnvConfig reads MD2SITE_* overrides from the environment.
func readEnvConfig(getenv func(string) string) envConfig {
	return envConfig{
		ConfigPath: getenv("MD2SITE_CONFIG"),
		Template:   getenv("MD2SITE_TEMPLATE"),
		Style:      getenv("MD2SITE_STYLE"),
	}
}
