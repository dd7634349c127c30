package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/energymonitor-backend/internal/app"
)

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), c.cfg, c.log)
		},
	}
}
