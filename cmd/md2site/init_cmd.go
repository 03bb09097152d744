package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// ErrAlreadyExists indicates init would overwrite a file without --force.
var ErrAlreadyExists = errors.New("file already exists (use --force to overwrite)")

// scaffoldFilePermissions is applied to scaffolded files: rw-r--r--.
const scaffoldFilePermissions = 0o644

// starterConfigYAML renders the scaffolded md2site.yaml from a Config
// value, so the scaffold always matches the schema the loader parses.
func starterConfigYAML() (string, error) {
	cfg := &config.Config{
		Template: config.TemplateConfig{Path: "templates/page.html"},
		CSS:      config.CSSConfig{Style: "styles/docs.css"},
		Sets: []config.SetConfig{
			{
				Name:      "guidelines",
				SourceDir: "docs/guidelines",
				OutputDir: "site/guidelines",
				Files:     []string{"example.md"},
			},
			{
				Name:      "process",
				SourceDir: "docs/process",
				OutputDir: "site/process",
				Files:     []string{"pull-requests.md"},
			},
		},
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("rendering starter config: %w", err)
	}
	return string(data), nil
}

// runInit scaffolds a starter config, page template, and stylesheet.
func runInit(flags *initFlags, env *Environment) error {
	starter, err := starterConfigYAML()
	if err != nil {
		return err
	}
	template, err := env.AssetLoader.LoadTemplate(assets.DefaultTemplate)
	if err != nil {
		return err
	}
	style, err := env.AssetLoader.LoadStyle(assets.DefaultStyle)
	if err != nil {
		return err
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(flags.dir, "md2site.yaml"), starter},
		{filepath.Join(flags.dir, "templates", "page.html"), template},
		{filepath.Join(flags.dir, "styles", "docs.css"), style},
	}

	for _, f := range files {
		if err := writeScaffoldFile(f.path, f.content, flags.force); err != nil {
			return err
		}
		fmt.Fprintf(env.Stdout, "Wrote %s\n", f.path)
	}

	return nil
}

// writeScaffoldFile writes one scaffold file, creating parent directories.
// Refuses to overwrite existing files unless force is set.
func writeScaffoldFile(path, content string, force bool) error {
	if !force && fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	}
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	// #nosec G306 -- scaffolded files are meant to be readable
	if err := os.WriteFile(path, []byte(content), scaffoldFilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
