// Package config provides process settings for the checkout function
// binaries. Merchant configuration lives in metafields, not here.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Victor-armando18/checkout-functions/internal/logging"
)

const EnvPrefix = "CHECKOUT"

// Settings holds process configuration shared by cmd/function and cmd/engine.
type Settings struct {
	ListenAddr string
	LogLevel   string
	LogFormat  string
	// RulesDir overrides the embedded rule packs when set.
	RulesDir string
}

// Default returns settings with default values.
func Default() *Settings {
	return &Settings{
		ListenAddr: ":8080",
		LogLevel:   "info",
		LogFormat:  "json",
	}
}

// Load reads settings with viper.
// Flags (bound by the caller on v) > environment > config file > defaults.
func Load(v *viper.Viper, configPath string) (*Settings, error) {
	if v == nil {
		v = viper.New()
	}

	def := Default()
	v.SetDefault("listen_addr", def.ListenAddr)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("rules_dir", def.RulesDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	s := &Settings{
		ListenAddr: v.GetString("listen_addr"),
		LogLevel:   v.GetString("log_level"),
		LogFormat:  v.GetString("log_format"),
		RulesDir:   v.GetString("rules_dir"),
	}

	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func validate(s *Settings) error {
	if strings.TrimSpace(s.ListenAddr) == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := logging.ParseFormat(s.LogFormat); err != nil {
		return fmt.Errorf("log_format: %w", err)
	}
	return nil
}
