// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads kvbrowse settings from defaults, config files,
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/kvbrowse/internal/engine"
)

// Config keys match the flag names so viper can bind flags directly.
const (
	KeyPageSize = "page-size"
	KeyEngine   = "engine"
	KeyLanguage = "lang"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
)

// Config is the effective configuration of a session.
type Config struct {
	PageSize int    `mapstructure:"page-size" yaml:"page-size"`
	Engine   string `mapstructure:"engine" yaml:"engine"`
	Language string `mapstructure:"lang" yaml:"lang"`
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
	LogFile  string `mapstructure:"log-file" yaml:"log-file,omitempty"`
}

// Defaults returns the built-in default values keyed by config key.
func Defaults() map[string]any {
	return map[string]any{
		KeyPageSize: 30,
		KeyEngine:   string(engine.Auto),
		KeyLanguage: "en",
		KeyLogLevel: "warn",
		KeyLogFile:  "",
	}
}

// Validate checks values that flags and files cannot constrain.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page-size must be a positive integer, got %d", c.PageSize)
	}
	if _, err := engine.ParseKind(c.Engine); err != nil {
		return err
	}
	return nil
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "kvbrowse")
		default:
			configDir = "/etc/kvbrowse"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "kvbrowse")
	}

	return filepath.Join(configDir, "kvbrowse.yaml"), nil
}

// LoadConfig builds a T from defaults, the first kvbrowse.yaml found in the
// user config dir, the system config dir or the working directory (or the
// explicit file at configPath), KVBROWSE_* environment variables and the
// flags of cmd. A missing config file is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("kvbrowse")
	v.SetConfigType("yaml")

	if configPath != nil {
		v.SetConfigFile(*configPath)
	} else {
		if userConfigPath, err := getConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := getConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != nil || !errors.As(err, &notFound) {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("kvbrowse")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// WriteConfigFile writes c as YAML to the user (or system) config path and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
