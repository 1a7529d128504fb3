package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hal9000y/sponsor-emails/internal/check"
	"github.com/hal9000y/sponsor-emails/internal/sender"
)

func validateCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the configuration is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, closeLog := setupLogger(false, g.logFile)
			defer closeLog()

			cfg, err := g.loadConfig(log)
			if err != nil {
				return err
			}

			connect := func(ctx context.Context) (*sender.Google, error) {
				return sender.ConnectGoogle(ctx, cfg.Credentials)
			}
			c := check.New(cfg, connect, sender.NewMailgun(cfg.Credentials))

			log.Info().Msg("Running checks...")
			for _, r := range c.Run(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			log.Info().Msg("Done!")

			return nil
		},
	}
}
