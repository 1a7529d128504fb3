// sponsor-emails sends sponsorship outreach emails built from a Google Docs
// template to the companies listed in a Google Sheets spreadsheet.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hal9000y/sponsor-emails/internal/config"
)

type globalFlags struct {
	configPath string
	envFile    string
	logFile    string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "sponsor-emails",
		Short:         "Automate sending sponsorship emails using Google Docs, Google Sheets, and Mailgun",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "./config.json", "Configuration file to load, created with defaults when missing")
	root.PersistentFlags().StringVar(&g.envFile, "env-file", "", "Path to env file")
	root.PersistentFlags().StringVar(&g.logFile, "log-file", "", "Path to log file, logs go to stderr otherwise")

	root.AddCommand(validateCommand(g), sendCommand(g), serveCommand(g))

	return root
}

// loadConfig loads the env file, if any, then the configuration.
func (g *globalFlags) loadConfig(log zerolog.Logger) (*config.Config, error) {
	if g.envFile != "" {
		if err := godotenv.Load(g.envFile); err != nil {
			return nil, fmt.Errorf("godotenv.Load failed: %w", err)
		}
	}

	cfg, err := config.Load(g.configPath)
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			log.Error().Str("path", g.configPath).Msg("failed to load configuration")
			for _, f := range verr.Fields {
				fmt.Fprintf(os.Stderr, "\t%s: %s\n", f.Field, f.Message)
			}
			return nil, errors.New("invalid configuration")
		}
		return nil, err
	}

	return cfg, nil
}

func setupLogger(enableStdio bool, logFile string) (zerolog.Logger, func()) {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		log := zerolog.New(f).With().Timestamp().Logger()
		return log, func() {
			if err := f.Close(); err != nil {
				fmt.Fprintln(os.Stderr, fmt.Errorf("f.Close failed: %w", err))
			}
		}
	}

	if enableStdio {
		return zerolog.New(io.Discard), func() {}
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(), func() {}
}
