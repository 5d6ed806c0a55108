package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Victor-armando18/checkout-functions/internal/config"
	"github.com/Victor-armando18/checkout-functions/internal/logging"
	"github.com/Victor-armando18/checkout-functions/internal/metrics"
	"github.com/Victor-armando18/checkout-functions/pkg/engine"
)

var (
	configFile string
	v          = viper.New()
)

var rootCmd = &cobra.Command{
	Use:           "engine",
	Short:         "Local preview server for the checkout functions",
	Long:          `Serves the delivery and payment customization functions over HTTP for local testing and previews.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          serve,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.String("listen-addr", config.Default().ListenAddr, "address the server listens on")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "json", "log format (json, logfmt, text)")
	flags.String("rules-dir", "", "directory overriding the embedded rule packs")

	_ = v.BindPFlag("listen_addr", flags.Lookup("listen-addr"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = v.BindPFlag("rules_dir", flags.Lookup("rules-dir"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}

	runner, err := engine.NewRunner(engine.Options{RulesDir: settings.RulesDir})
	if err != nil {
		return err
	}

	e := newServer(runner, metrics.New(), logger)

	logger.Info("starting preview server", slog.String("addr", settings.ListenAddr))
	if err := e.Start(settings.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
