package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// runBuild loads the site configuration and converts every manifest
// document. Resolution order for overridable values: CLI flag, then
// MD2SITE_* environment variable, then config file.
func runBuild(ctx context.Context, flags *buildFlags, env *Environment) error {
	envCfg := readEnvConfig(env.Getenv)

	cfg, err := loadBuildConfig(flags, envCfg)
	if err != nil {
		return err
	}

	manifest := toManifest(cfg.Sets)
	if len(manifest.Sets) == 0 {
		return ErrNoManifest
	}

	loader, err := resolveAssetLoader(cfg, env)
	if err != nil {
		return err
	}

	templates, err := resolveTemplateSource(flags, envCfg, cfg, loader)
	if err != nil {
		return err
	}

	css, err := resolveCSSContent(flags, envCfg, cfg, loader)
	if err != nil {
		return err
	}

	svc := md2site.New(serviceOptions(cfg)...)

	progress := io.Writer(env.Stdout)
	if flags.common.quiet {
		progress = io.Discard
	}

	runner := md2site.NewRunner(svc, templates,
		md2site.WithProgress(progress),
		md2site.WithStyle(css),
	)

	start := env.Now()
	if err := runner.Run(ctx, manifest); err != nil {
		return err
	}

	if flags.common.verbose {
		elapsed := env.Now().Sub(start)
		fmt.Fprintf(env.Stderr, "Built %d set(s) in %v\n", len(manifest.Sets), elapsed.Round(time.Millisecond))
	}

	return nil
}

// loadBuildConfig loads the YAML config, preferring the --config flag,
// then MD2SITE_CONFIG, then the default name in standard locations.
func loadBuildConfig(flags *buildFlags, envCfg envConfig) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		name = defaultConfigName
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// serviceOptions maps markdown config onto library options.
func serviceOptions(cfg *config.Config) []md2site.Option {
	var opts []md2site.Option
	if cfg.Markdown.HardWraps {
		opts = append(opts, md2site.WithHardWraps())
	}
	if cfg.Markdown.RawHTML {
		opts = append(opts, md2site.WithRawHTML())
	}
	return opts
}

// toManifest converts config document sets to the library manifest.
func toManifest(sets []config.SetConfig) md2site.Manifest {
	m := md2site.Manifest{Sets: make([]md2site.DocumentSet, len(sets))}
	for i, set := range sets {
		m.Sets[i] = md2site.DocumentSet{
			Name:      set.Name,
			SourceDir: set.SourceDir,
			OutputDir: set.OutputDir,
			Files:     set.Files,
		}
	}
	return m
}

// resolveAssetLoader returns the filesystem loader when a base path is
// configured, otherwise the environment's (embedded) loader.
func resolveAssetLoader(cfg *config.Config, env *Environment) (assets.AssetLoader, error) {
	if cfg.Assets.BasePath == "" {
		return env.AssetLoader, nil
	}
	return assets.NewFilesystemLoader(cfg.Assets.BasePath)
}

// resolveTemplateSource picks the page template.
// A configured file path is re-read per conversion (FileTemplate); the
// embedded default is served as a static source.
func resolveTemplateSource(flags *buildFlags, envCfg envConfig, cfg *config.Config, loader assets.AssetLoader) (md2site.TemplateSource, error) {
	path := flags.template
	if path == "" {
		path = envCfg.Template
	}
	if path == "" {
		path = cfg.Template.Path
	}

	if path != "" {
		return md2site.FileTemplate(path), nil
	}

	content, err := loader.LoadTemplate(assets.DefaultTemplate)
	if err != nil {
		return nil, err
	}
	return md2site.StaticTemplate(content), nil
}

// resolveCSSContent resolves CSS from CLI flag, environment, or config.
// A value containing a path separator is read as a file; otherwise it is
// an asset style name.
func resolveCSSContent(flags *buildFlags, envCfg envConfig, cfg *config.Config, loader assets.AssetLoader) (string, error) {
	if flags.noStyle {
		return "", nil
	}

	style := flags.style
	if style == "" {
		style = envCfg.Style
	}
	if style == "" {
		style = cfg.CSS.Style
	}
	if style == "" {
		return "", nil
	}

	if fileutil.IsFilePath(style) {
		content, err := os.ReadFile(style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		return string(content), nil
	}

	return loader.LoadStyle(style)
}
