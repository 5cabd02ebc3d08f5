package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Temutjin2k/rickshaw-analytics/config"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
)

var (
	// Global flags
	configPath string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "rickshaw-dashboard",
	Short:        "Search-to-quote funnel dashboard for the auto-rickshaw service",
	Long:         config.HelpMessage,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the config yaml file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (DEBUG, INFO, WARN, ERROR)")
}

// setup loads the configuration and builds the logger for a command.
func setup(ctx context.Context) (*config.Config, logger.Logger, error) {
	log := logger.InitLogger("", logger.LevelInfo)

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		return nil, nil, err
	}

	if logLevel != "" {
		if !logger.ValidateLogLevel(logLevel) {
			return nil, nil, fmt.Errorf("%w: %q", config.ErrInvalidLogLevel, logLevel)
		}
		cfg.Log.Level = logLevel
	}

	return cfg, logger.InitLogger(cfg.Log.Service, cfg.Log.Level), nil
}
