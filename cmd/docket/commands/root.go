package commands

import (
	"github.com/spf13/cobra"

	"docket/internal/app"
	"docket/internal/log"
)

var (
	home       string
	configPath string
	logLevel   string
	serverURL  string

	appCtx *app.Wire
)

func Execute() error {
	defer closeApp()
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "docket",
		Short:        "Evidence-aware drafting and court compliance for litigants",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				c.LogLevel = logLevel
			}
			if cmd.Flags().Changed("server") {
				c.ServerURL = serverURL
			}
			log.Configure(log.Config{Level: c.LogLevel})

			w, err := app.NewWire(c)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.docket)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "docketd base URL (e.g. http://127.0.0.1:8080)")

	root.AddCommand(readmeCmd(), evidenceCmd(), draftCmd(), courtsCmd(), routeCmd())
	return root
}

func closeApp() {
	if appCtx != nil {
		_ = appCtx.Close()
		appCtx = nil
	}
}
