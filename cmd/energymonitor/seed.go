package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/energymonitor-backend/internal/adapter/mqtt"
	"github.com/heartmarshall/energymonitor-backend/internal/app"
	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

func (c *cli) seedCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a synthetic 30-day history for an existing user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := app.OpenDatabase(ctx, c.cfg.Database, c.log)
			if err != nil {
				return err
			}
			defer pool.Close()

			svcs := app.NewServices(pool, c.cfg, c.log, mqtt.Noop{})

			user, err := svcs.Users.GetByEmail(ctx, domain.NormalizeEmail(email))
			if err != nil {
				return fmt.Errorf("seed: find user %q: %w", email, err)
			}

			n, err := svcs.Consumption.SeedSynthetic(ctx, user.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d readings for %s\n", n, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the user to seed")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
