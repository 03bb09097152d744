package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
)

// testEnv returns an Environment backed by buffers and a map of
// environment variables, plus the stdout and stderr buffers.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Now:    time.Now,
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(key string) string {
			return vars[key]
		},
		AssetLoader: assets.NewEmbeddedLoader(),
	}
	return env, stdout, stderr
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(nil)

	if err := run([]string{"md2site", "version"}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "md2site ") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(nil)

	err := run([]string{"md2site", "frobnicate"}, env)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("run() error = %v, want ErrUnknownCommand", err)
	}
	if !strings.Contains(stderr.String(), "Usage") {
		t.Error("usage not printed to stderr")
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"general", []string{"md2site", "help"}, "Usage"},
		{"build topic", []string{"md2site", "help", "build"}, "build"},
		{"init topic", []string{"md2site", "help", "init"}, "init"},
		{"unknown topic falls back", []string{"md2site", "help", "nope"}, "Usage"},
		{"dash dash help", []string{"md2site", "--help"}, "Usage"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv(nil)
			if err := run(tt.args, env); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("help output %q does not mention %q", stdout.String(), tt.want)
			}
		})
	}
}
