package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"docket/internal/app"
	"docket/internal/log"
	"docket/internal/server"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		home       string
		configPath string
		addr       string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:          "docketd",
		Short:        "Serve court profiles and compliance validation over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.ListenAddr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			log.Configure(log.Config{Level: cfg.LogLevel, Service: "docketd"})
			logger := log.WithComponent("main")

			courts, err := app.NewCourts(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Server.Watch {
				if err := os.MkdirAll(cfg.CourtsDir, 0o700); err != nil {
					return err
				}
				w := server.NewProfileWatcher(cfg.CourtsDir, courts.Reload, server.DefaultDebounce)
				if err := w.Start(ctx); err != nil {
					logger.Warn().Err(err).Msg("court profile reload disabled")
				}
			}

			srv := server.New(courts, server.Config{
				Addr:           cfg.Server.ListenAddr,
				ValidateLimit:  cfg.Server.ValidateLimit,
				ValidateWindow: cfg.Server.ValidateWindow,
			})
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "data dir (default ~/.docket)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	return cmd
}
