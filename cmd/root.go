package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/killallgit/fanboy/internal/logging"
	"github.com/killallgit/fanboy/pkg/config"
	"github.com/spf13/cobra"
)

// logger is configured by the root command before any subcommand runs
var logger = slog.Default()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates the command tree (exported for testing)
func NewRootCmd() *cobra.Command {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "fanboy",
		Short: "Fanboy podcast search client",
		Long: `Fanboy - A client for the fanboy podcast search service

Query a fanboy service from the command line or expose it through a REST
gateway.

Features:
  • Podcast search, lookup by guid and search term suggestions
  • Cancellable requests (Ctrl-C cancels the request in flight)
  • REST gateway with metrics, rate limiting and Swagger docs`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := loadConfig(cmd)
			logCloser = closer
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
	}

	// Add persistent flags for configuration
	flags := rootCmd.PersistentFlags()
	flags.String("config", config.DefaultFile, "config file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("json-logs", false, "enable JSON formatted logs")
	flags.String("base-url", "", "fanboy service URL (overrides fanboy.base_url)")
	flags.Duration("timeout", 0, "upstream request timeout (overrides fanboy.timeout)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newUpstreamCmd(),
		newSearchCmd(),
		newLookupCmd(),
		newSuggestCmd(),
		newServeCmd(),
	)

	return rootCmd
}

// loadConfig initializes configuration and logging for the command about to run.
// The version and help commands don't need either.
func loadConfig(cmd *cobra.Command) (io.Closer, error) {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil, nil
	}

	flags := cmd.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		config.SetFile(path)
	}
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}

	// Flags win over the config file and environment
	if flags.Changed("base-url") {
		v, _ := flags.GetString("base-url")
		config.Set("fanboy.base_url", v)
	}
	if flags.Changed("timeout") {
		v, _ := flags.GetDuration("timeout")
		config.Set("fanboy.timeout", v)
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		config.Set("logging.level", v)
	}
	if flags.Changed("json-logs") {
		if v, _ := flags.GetBool("json-logs"); v {
			config.Set("logging.format", "json")
		}
	}

	l, closer, err := logging.New(logging.Options{
		Level:  config.GetString("logging.level"),
		JSON:   strings.EqualFold(config.GetString("logging.format"), "json"),
		Output: config.GetString("logging.output"),
	})
	if err != nil {
		return nil, err
	}
	logger = l
	return closer, nil
}
