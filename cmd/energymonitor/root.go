package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/energymonitor-backend/internal/app"
	"github.com/heartmarshall/energymonitor-backend/internal/config"
)

// cli carries state shared by subcommands once the root pre-run has loaded it.
type cli struct {
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "energymonitor",
		Short:         "Energy consumption monitor backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(c.cfgFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.log = app.NewLogger(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(c.serveCmd(), c.migrateCmd(), c.seedCmd())
	return root
}
