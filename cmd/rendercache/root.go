package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-rendercache/internal/config"
	"github.com/goliatone/go-rendercache/internal/logging"
	"github.com/goliatone/go-rendercache/internal/prompt"
	"github.com/goliatone/go-rendercache/pkg/httpapi"
	"github.com/goliatone/go-rendercache/pkg/preview"
	"github.com/goliatone/go-rendercache/pkg/render"
)

type cli struct {
	out      io.Writer
	prompter prompt.Driver

	configPath string
	logLevel   string

	cfg      config.Config
	logger   *zap.Logger
	registry *render.Registry
}

func newRootCmd(out io.Writer, prompter prompt.Driver) *cobra.Command {
	c := &cli{out: out, prompter: prompter}

	root := &cobra.Command{
		Use:   "rendercache",
		Short: "Inspect and serve render specifications",
		Long: `rendercache builds render specifications: a lazy builder callback, a
placeholder flag and the fallback markup shown until the callback output is
substituted by the consuming framework.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(c.listCmd(), c.buildCmd(), c.previewCmd(), c.serveCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	reg, err := buildRegistry(cfg, logger)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger
	c.registry = reg
	return nil
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range c.registry.List() {
				if _, err := fmt.Fprintln(c.out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *cli) buildCmd() *cobra.Command {
	var (
		format      string
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "build [name]",
		Short: "Print the render specification of a block",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			name, err := c.blockName(cmd, args, interactive)
			if err != nil {
				return err
			}
			spec, err := c.registry.Build(name)
			if err != nil {
				return err
			}
			data, err := render.Encode(spec, f)
			if err != nil {
				return err
			}
			_, err = c.out.Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, yaml)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the block from a list")
	return cmd
}

func (c *cli) previewCmd() *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "preview [name]",
		Short: "Print the placeholder HTML a consumer renders first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := c.blockName(cmd, args, interactive)
			if err != nil {
				return err
			}
			spec, err := c.registry.Build(name)
			if err != nil {
				return err
			}
			renderer, err := buildPreview(c.cfg, c.logger)
			if err != nil {
				return err
			}
			out, err := renderer.Render(cmd.Context(), spec, preview.Options{})
			if err != nil {
				return err
			}
			if _, err := c.out.Write(out); err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.out)
			return err
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the block from a list")
	return cmd
}

func (c *cli) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve blocks over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				c.cfg.Server.Addr = addr
			}
			timeout, err := c.cfg.ShutdownTimeout()
			if err != nil {
				return err
			}
			renderer, err := buildPreview(c.cfg, c.logger)
			if err != nil {
				return err
			}
			srv, err := httpapi.New(c.registry, renderer, httpapi.WithLogger(c.logger))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx, c.cfg.Server.Addr, timeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func (c *cli) blockName(cmd *cobra.Command, args []string, interactive bool) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	if !interactive {
		return "", errors.New("block name required (or pass --interactive)")
	}
	if c.prompter == nil {
		return "", errors.New("interactive mode is not available")
	}

	names := c.registry.List()
	idx, err := c.prompter.Select(cmd.Context(), prompt.SelectConfig{
		Message: "Block:",
		Options: names,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(names) {
		return "", fmt.Errorf("invalid selection %d", idx)
	}
	return names[idx], nil
}
