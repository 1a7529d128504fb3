package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hal9000y/sponsor-emails/internal/sender"
)

func sendCommand(g *globalFlags) *cobra.Command {
	opts := sender.Options{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send the sponsor emails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, closeLog := setupLogger(false, g.logFile)
			defer closeLog()

			cfg, err := g.loadConfig(log)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("out-dir") {
				opts.OutDir = cfg.DryRunDir
			}

			rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			confirm := promptConfirm(cmd.InOrStdin(), cmd.ErrOrStderr())

			o := sender.New(cfg, sender.Connect(cfg.Credentials), confirm, rnd, log)

			return runSend(cmd.Context(), o, opts, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().BoolVarP(&opts.Single, "single", "s", false, "Send an email to the first company in the list")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "d", false, "Pull and format the messages but write them to files instead of sending")
	cmd.Flags().StringVarP(&opts.Overwrite, "overwrite", "o", "", "Overwrite the recipient email for testing")
	cmd.Flags().BoolVar(&opts.MarkSent, "mark-sent", false, "Write the sent status back to the sponsor sheet after each send")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "Directory for dry run messages (default from config)")

	return cmd
}

type runner interface {
	Run(ctx context.Context, opts sender.Options) (sender.Result, error)
}

// runSend runs the send and prints the tallies. A declined confirmation
// returns sender.ErrAborted and prints nothing.
func runSend(ctx context.Context, r runner, opts sender.Options, out io.Writer, log zerolog.Logger) error {
	res, err := r.Run(ctx, opts)
	if errors.Is(err, sender.ErrAborted) {
		log.Warn().Msg("send aborted")
		return err
	}
	if err != nil {
		var runErr *sender.Error
		if errors.As(err, &runErr) {
			log.Error().Str("stage", runErr.Stage.String()).Str("kind", runErr.Kind.String()).Msg(runErr.Message)
		}
		return err
	}

	fmt.Fprintln(out, summary(res))
	return nil
}

func summary(res sender.Result) string {
	s := fmt.Sprintf("Successfully sent %d/%d sponsor emails!", res.Success, res.Total)
	if res.Skipped != 0 {
		s += fmt.Sprintf(" (Skipped %d emails)", res.Skipped)
	}
	return s
}

func promptConfirm(in io.Reader, out io.Writer) sender.ConfirmFunc {
	return func(total int) (bool, error) {
		fmt.Fprintf(out, "Are you sure you want to send %d sponsor emails? [y/N]: ", total)

		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read confirmation failed: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
