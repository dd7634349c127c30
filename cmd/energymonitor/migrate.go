package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/energymonitor-backend/internal/adapter/postgres"
	"github.com/heartmarshall/energymonitor-backend/internal/app"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or list schema migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}

			ctx := cmd.Context()
			dbCfg := c.cfg.Database
			dbCfg.AutoMigrate = false
			pool, err := app.OpenDatabase(ctx, dbCfg, c.log)
			if err != nil {
				return err
			}
			defer pool.Close()

			return app.Migrate(ctx, pool, c.log, func(m *postgres.Migrator) error {
				switch action {
				case "down":
					return m.Down(ctx)
				case "status":
					states, err := m.Status(ctx)
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "VERSION\tAPPLIED\tFILE")
					for _, s := range states {
						fmt.Fprintf(w, "%d\t%t\t%s\n", s.Version, s.Applied, s.Path)
					}
					return w.Flush()
				default:
					return m.Up(ctx)
				}
			})
		},
	}
}
