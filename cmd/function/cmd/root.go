package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Victor-armando18/checkout-functions/internal/config"
	"github.com/Victor-armando18/checkout-functions/internal/logging"
)

var (
	configFile string
	v          = viper.New()
	// logger is set once settings load; Execute reports failures through it.
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "function",
	Short:         "Checkout customization functions",
	Long:          `Runs the delivery and payment customization functions: host input on stdin, operations on stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "log format (json, logfmt, text)")
	rootCmd.PersistentFlags().String("rules-dir", "", "directory overriding the embedded rule packs")

	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag("rules_dir", rootCmd.PersistentFlags().Lookup("rules-dir"))
}

// loadSettings resolves settings and installs the logger on the command's
// error stream.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := config.Load(v, configFile)
	if err != nil {
		return nil, err
	}
	l, err := logging.New(cmd.ErrOrStderr(), settings.LogLevel, settings.LogFormat)
	if err != nil {
		return nil, err
	}
	logger = l
	return settings, nil
}

// Execute runs the root command and logs a failure exactly once.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		l := logger
		if l == nil {
			l = slog.New(slog.NewJSONHandler(rootCmd.ErrOrStderr(), nil))
		}
		l.Error("invocation failed", slog.Any("error", err))
	}
	return err
}
