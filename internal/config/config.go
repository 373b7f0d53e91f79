// Package config loads cubesolver settings from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when loaded settings fail validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override, e.g. CUBESOLVER_LOG_LEVEL.
const EnvPrefix = "CUBESOLVER"

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Scramble ScrambleConfig `mapstructure:"scramble" yaml:"scramble"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Replay   ReplayConfig   `mapstructure:"replay" yaml:"replay"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
}

// DatabaseConfig holds sqlite settings for the benchmark store.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" validate:"required"`
}

// ScrambleConfig holds random scramble settings.
type ScrambleConfig struct {
	Length int `mapstructure:"length" yaml:"length" validate:"min=1,max=1000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
}

// ReplayConfig holds settings for the interactive replay.
type ReplayConfig struct {
	IntervalMS int `mapstructure:"interval_ms" yaml:"interval_ms" validate:"min=10"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Addr    string `mapstructure:"addr" yaml:"addr" validate:"required_if=Enabled true"`
}

// DefaultPath returns the config file used when neither an explicit path
// nor CUBESOLVER_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "cubesolver", "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "cubesolver", "bench.db"))
	v.SetDefault("scramble.length", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("replay.interval_ms", 400)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", ":9090")
}

// Load reads configuration from file and env. An explicit path wins over
// CUBESOLVER_CONFIG, which wins over DefaultPath. A missing file is not an
// error; env var overrides use prefix CUBESOLVER_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("scramble.length", cfg.Scramble.Length)
	v.Set("log.level", cfg.Log.Level)
	v.Set("replay.interval_ms", cfg.Replay.IntervalMS)
	v.Set("metrics.enabled", cfg.Metrics.Enabled)
	v.Set("metrics.addr", cfg.Metrics.Addr)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
