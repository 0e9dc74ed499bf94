// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads ssr's layered configuration: built-in defaults, an
// optional ssr.yaml, SSR_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/ssr/internal/i18n"
)

// DefaultLockTimeout is how long a removal waits for the advisory lock.
const DefaultLockTimeout = 5 * time.Second

// Color modes accepted by the "color" key. Output is plain unless color is
// asked for.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective configuration of one invocation.
type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	Color    string `mapstructure:"color" yaml:"color"`
	Lock     bool   `mapstructure:"lock" yaml:"lock"`
	// LockTimeout bounds the wait for the advisory lock.
	LockTimeout time.Duration `mapstructure:"lock_timeout" yaml:"lock_timeout"`
	Backup      bool          `mapstructure:"backup" yaml:"backup"`
	Audit       AuditConfig   `mapstructure:"audit" yaml:"audit"`
}

// AuditConfig configures the optional removal journal.
type AuditConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Type    string `mapstructure:"type" yaml:"type"`
	Dsn     string `mapstructure:"dsn" yaml:"dsn"`
}

// Defaults returns the built-in default values keyed like the config file.
func Defaults() map[string]any {
	return map[string]any{
		"language":      "en",
		"color":         ColorNever,
		"lock":          false,
		"lock_timeout":  DefaultLockTimeout,
		"backup":        false,
		"audit.enabled": false,
		"audit.type":    "sqlite",
		"audit.dsn":     "",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "ssr")
		default:
			configDir = "/etc/ssr"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "ssr")
	}

	return filepath.Join(configDir, "ssr.yaml"), nil
}

// LoadConfig builds T from defaults, the first ssr.yaml found (or
// configFile when non-nil), SSR_* environment variables and the flags of cmd.
// A missing config file is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("ssr")
	v.SetConfigType("yaml")
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix("ssr")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
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

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	if !slices.Contains(i18n.Available(), c.Language) {
		return fmt.Errorf("unsupported language %q (available: %s)", c.Language, strings.Join(i18n.Available(), ", "))
	}
	if c.LockTimeout < 0 {
		return fmt.Errorf("lock_timeout must not be negative, got %s", c.LockTimeout)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	switch c.Audit.Type {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported audit database type %q", c.Audit.Type)
	}
	return nil
}

// AuditDSN returns the journal DSN, defaulting to history.db in the user
// config directory for SQLite.
func (c *Config) AuditDSN() (string, error) {
	if c.Audit.Dsn != "" {
		return c.Audit.Dsn, nil
	}
	if c.Audit.Type != "sqlite" {
		return "", fmt.Errorf("audit.dsn is required for %s", c.Audit.Type)
	}
	userConfigPath, err := GetConfigPath(false)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(userConfigPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", dir, err)
	}
	return filepath.Join(dir, "history.db"), nil
}

// Encode writes c as YAML, in the same shape ssr.yaml is read.
func Encode[T any](w io.Writer, c *T) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
