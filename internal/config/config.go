// Package config resolves runtime settings for the wordgraph CLI.
//
// Precedence (highest first): command-line flags bound to viper, WORDGRAPH_*
// environment variables (a .env file in the working directory is loaded
// first), .wordgraph.yaml, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "WORDGRAPH"

// Viper keys.
const (
	KeyLogLevel      = "log_level"
	KeySeed          = "seed"
	KeyDamping       = "damping"
	KeyPathCacheSize = "path_cache_size"
	KeyMetrics       = "metrics"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all runtime configuration for a wordgraph run.
type Config struct {
	LogLevel      string  `mapstructure:"log_level"`
	Seed          int64   `mapstructure:"seed"` // 0 ⇒ time-seeded randomness
	Damping       float64 `mapstructure:"damping"`
	PathCacheSize int     `mapstructure:"path_cache_size"`
	Metrics       bool    `mapstructure:"metrics"`
}

// Init configures the global viper instance: optional .env, config file
// lookup and environment binding. A missing default config file is not an
// error; a missing explicit cfgFile is.
func Init(cfgFile string) error {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".wordgraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read config: %w", err)
	}

	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates it.
func Load() (Config, error) {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeySeed, 0)
	viper.SetDefault(KeyDamping, 0.85)
	viper.SetDefault(KeyPathCacheSize, 128)
	viper.SetDefault(KeyMetrics, false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if math.IsNaN(c.Damping) || c.Damping < 0 || c.Damping > 1 {
		return fmt.Errorf("%w: damping %v not in [0,1]", ErrInvalid, c.Damping)
	}
	if c.PathCacheSize < 1 {
		return fmt.Errorf("%w: path_cache_size %d < 1", ErrInvalid, c.PathCacheSize)
	}
	return nil
}
