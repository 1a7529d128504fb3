package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hal9000y/sponsor-emails/internal/check"
	"github.com/hal9000y/sponsor-emails/internal/sender"
	"github.com/hal9000y/sponsor-emails/internal/tool"
)

func serveCommand(g *globalFlags) *cobra.Command {
	var (
		enableStdio bool
		httpAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validate and preview tools over the Model Context Protocol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !enableStdio && httpAddr == "" {
				return errors.New("either --stdio or --http-addr must be set")
			}

			log, closeLog := setupLogger(enableStdio, g.logFile)
			defer closeLog()

			cfg, err := g.loadConfig(log)
			if err != nil {
				return err
			}

			google, err := sender.ConnectGoogle(cmd.Context(), cfg.Credentials)
			if err != nil {
				return fmt.Errorf("sender.ConnectGoogle failed: %w", err)
			}
			mg := sender.NewMailgun(cfg.Credentials)

			connect := func(context.Context) (*sender.Google, error) { return google, nil }
			srv := tool.NewServer(cfg, check.New(cfg, connect, mg), google.Docs, mg.SendingDomain())

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, syscall.SIGTERM, syscall.SIGINT)

			var errHTTPCh <-chan error
			if httpAddr != "" {
				ln, err := net.Listen("tcp", httpAddr)
				if err != nil {
					return fmt.Errorf("net.Listen failed: %w", err)
				}

				mux := http.NewServeMux()
				mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server { return srv }, nil))

				var stopHTTP func()
				stopHTTP, errHTTPCh = serveHTTP(log, &http.Server{Handler: mux}, ln)
				defer stopHTTP()
			}

			var errStdioCh <-chan error
			if enableStdio {
				var stopStdio func()
				stopStdio, errStdioCh = serveStdio(log, srv)
				defer stopStdio()
			}

			select {
			case err := <-errHTTPCh:
				log.Error().Err(err).Msg("Error http server")
			case err := <-errStdioCh:
				log.Error().Err(err).Msg("Error stdio")
			case <-shutdown:
				log.Info().Msg("Shutdown signal received")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&enableStdio, "stdio", false, "Enable stdio transport for MCP (disables console logging)")
	cmd.Flags().StringVar(&httpAddr, "http-addr", "", "HTTP server listen addr for the streamable MCP transport")

	return cmd
}

func serveStdio(log zerolog.Logger, srv *mcp.Server) (func(), <-chan error) {
	errStdioCh := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer close(errStdioCh)
		log.Info().Msg("Starting stdio transport")

		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
			err = fmt.Errorf("srv.Run failed: %w", err)
			errStdioCh <- err
		}
	}()

	return func() {
		cancel()

		<-errStdioCh
		log.Info().Msg("Stdio transport stopped")
	}, errStdioCh
}

func serveHTTP(log zerolog.Logger, srv *http.Server, ln net.Listener) (func(), <-chan error) {
	errHTTPCh := make(chan error, 1)
	go func() {
		defer close(errHTTPCh)

		log.Info().Str("addr", ln.Addr().String()).Msg("Starting http server")

		err := srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("srv.Serve failed: %w", err)
			log.Error().Err(err).Send()
			errHTTPCh <- err
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(fmt.Errorf("srv.Shutdown failed: %w", err)).Send()
		}

		<-errHTTPCh
		log.Info().Msg("HTTP server stopped")
	}, errHTTPCh
}
