// Package config loads sessionlist settings from defaults, YAML files,
// SESSIONLIST_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nilovelez/wptv-sessions-list/core/render"
)

const envPrefix = "SESSIONLIST"

// Config holds application configuration.
type Config struct {
	// Timezone is the IANA name of the site timezone. Dates, times and
	// folder names are derived in it.
	Timezone      string          `mapstructure:"timezone" yaml:"timezone"`
	WeekdayLocale string          `mapstructure:"weekday_locale" yaml:"weekday_locale"`
	UserAgent     string          `mapstructure:"user_agent" yaml:"user_agent"`
	Log           LogConfig       `mapstructure:"log" yaml:"log"`
	Server        ServerConfig    `mapstructure:"server" yaml:"server"`
	Telemetry     TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text or json
	File   string `mapstructure:"file" yaml:"file"`   // rotated with lumberjack when set
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"timezone":   "timezone",
	"locale":     "weekday_locale",
	"user-agent": "user_agent",
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
	"addr":       "server.addr",
	"telemetry":  "telemetry.enabled",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timezone", "UTC")
	v.SetDefault("weekday_locale", "en")
	v.SetDefault("user_agent", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("telemetry.enabled", false)
}

// Load merges the global and project config files, the environment and
// the given flags. An explicit configFile replaces both file lookups.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	paths := []string{GlobalConfigPath(), ProjectConfigPath()}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := mergeFile(v, path); err != nil {
			if errors.Is(err, os.ErrNotExist) && configFile == "" {
				continue
			}
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func mergeFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	v.SetConfigFile(path)
	return v.MergeInConfig()
}

func (c *Config) validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := render.WeekdaysFor(c.WeekdayLocale); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	return nil
}

// Location resolves the configured site timezone. Empty means UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sessionlist", "config.yaml")
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".sessionlist", "config.yaml")
}
