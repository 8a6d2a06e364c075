package main

import (
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	rendercache "github.com/goliatone/go-rendercache"
	"github.com/goliatone/go-rendercache/internal/config"
	"github.com/goliatone/go-rendercache/pkg/preview"
	"github.com/goliatone/go-rendercache/pkg/render"
)

// buildRegistry registers the built-in blocks plus any declared under
// cfg.Blocks.Dir.
func buildRegistry(cfg config.Config, logger *zap.Logger) (*render.Registry, error) {
	var blocks fs.FS
	if cfg.Blocks.Dir != "" {
		info, err := os.Stat(cfg.Blocks.Dir)
		if err != nil {
			return nil, fmt.Errorf("blocks: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("blocks: %q is not a directory", cfg.Blocks.Dir)
		}
		blocks = os.DirFS(cfg.Blocks.Dir)
	}

	reg, err := rendercache.NewRegistry(blocks)
	if err != nil {
		return nil, err
	}
	logger.Debug("registry ready", zap.Strings("blocks", reg.List()))
	return reg, nil
}

func buildPreview(cfg config.Config, logger *zap.Logger) (*preview.Renderer, error) {
	opts := []preview.Option{
		preview.WithLogger(logger),
		preview.WithTemplatesDir(cfg.Preview.TemplatesDir),
	}
	if selection := themeSelection(cfg.Preview.Theme); selection != nil {
		opts = append(opts, preview.WithTheme(selection))
	}
	return preview.New(opts...)
}

func themeSelection(cfg config.ThemeConfig) *theme.Selection {
	if cfg.Name == "" {
		return nil
	}
	return &theme.Selection{
		Theme:   cfg.Name,
		Variant: cfg.Variant,
		Manifest: &theme.Manifest{
			Name:   cfg.Name,
			Tokens: cfg.Tokens,
		},
	}
}
