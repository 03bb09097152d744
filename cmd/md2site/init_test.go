package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2site/internal/config"
)

func TestRunInit_Scaffolds(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env, stdout, _ := testEnv(nil)

	if err := run([]string{"md2site", "init", "-d", dir}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, rel := range []string{
		"md2site.yaml",
		filepath.Join("templates", "page.html"),
		filepath.Join("styles", "docs.css"),
	} {
		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("scaffold missing %s: %v", rel, err)
		}
		if !strings.Contains(stdout.String(), "Wrote "+path) {
			t.Errorf("no progress line for %s", rel)
		}
	}

	// The starter config must survive a strict load with its values intact.
	cfg, err := config.LoadConfig(filepath.Join(dir, "md2site.yaml"))
	if err != nil {
		t.Fatalf("starter config does not load: %v", err)
	}
	if cfg.Template.Path != "templates/page.html" {
		t.Errorf("starter template path = %q", cfg.Template.Path)
	}
	if cfg.CSS.Style != "styles/docs.css" {
		t.Errorf("starter style = %q", cfg.CSS.Style)
	}
	if len(cfg.Sets) != 2 || cfg.Sets[0].Name != "guidelines" || cfg.Sets[1].Name != "process" {
		t.Errorf("starter sets = %+v", cfg.Sets)
	}

	// The scaffolded template must carry the content placeholder.
	tmpl, err := os.ReadFile(filepath.Join(dir, "templates", "page.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(tmpl), "{{content}}") {
		t.Error("scaffolded template lacks {{content}}")
	}
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "md2site.yaml")
	if err := os.WriteFile(existing, []byte("sets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env, _, _ := testEnv(nil)
	if err := run([]string{"md2site", "init", "-d", dir}, env); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("run() error = %v, want ErrAlreadyExists", err)
	}

	// The existing file is untouched.
	content, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "sets: []\n" {
		t.Errorf("existing config overwritten: %q", content)
	}
}

func TestRunInit_ForceOverwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "md2site.yaml")
	if err := os.WriteFile(existing, []byte("sets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env, _, _ := testEnv(nil)
	if err := run([]string{"md2site", "init", "-d", dir, "--force"}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	content, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) == "sets: []\n" {
		t.Error("--force did not overwrite the existing config")
	}
}
