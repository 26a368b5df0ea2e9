package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/killallgit/fanboy/api"
	"github.com/killallgit/fanboy/api/types"
	"github.com/killallgit/fanboy/pkg/config"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST gateway",
		Long: `Start the fanboy REST gateway with the configured settings.

The gateway exposes search, lookup, suggest and the upstream version
under /api/v1, plus /health, /metrics and Swagger docs under /docs.`,
		Example: `  fanboy serve
  fanboy serve --port 9090
  fanboy serve --host 0.0.0.0 --port 8080 --base-url http://localhost:8383`,
		Args: cobra.NoArgs,
		RunE: runServer,
	}

	// Server flags
	serveCmd.Flags().String("host", "", "server host (overrides config)")
	serveCmd.Flags().Int("port", 0, "server port (overrides config)")
	return serveCmd
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	opts := api.OptionsFromConfig(cfg)
	opts.Logger = logger

	server := api.NewServer(opts)
	server.SetDependencies(&types.Dependencies{
		Fanboy:          client,
		Logger:          logger,
		BuildVersion:    Version,
		UpstreamTimeout: cfg.Fanboy.Timeout + 5*time.Second,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	l, err := net.Listen("tcp", opts.Address)
	if err != nil {
		_ = server.Shutdown(context.Background())
		return fmt.Errorf("failed to listen on %s: %w", opts.Address, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Fanboy gateway listening on %s (upstream %s)\n", l.Addr(), client.Host())
	logger.Info("gateway started", "addr", l.Addr().String(), "upstream", client.Host())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(l)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down gateway")

		shutdownTimeout := cfg.Server.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Gateway stopped")
	return nil
}

