// Package config loads primelogic configuration using Viper.
//
// Configuration is resolved in precedence order: defaults, then an
// optional primelogic.toml in the working directory, then PRIMELOGIC_*
// environment variables.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/tessark/primelogic/errors"
)

// Config is the primelogic core configuration.
type Config struct {
	Prime PrimeConfig `mapstructure:"prime"`
	KB    KBConfig    `mapstructure:"kb"`
	Log   LogConfig   `mapstructure:"log"`
}

// PrimeConfig controls the prime sieve.
type PrimeConfig struct {
	// InitialSieveLimit is the upper bound of the first sieve pass.
	// The sieve doubles this bound on demand, so the value only tunes
	// startup cost.
	InitialSieveLimit int `mapstructure:"initial_sieve_limit"`
}

// KBConfig points at an optional knowledge base description file.
type KBConfig struct {
	// Path to a TOML knowledge base file for the deduce command.
	// Empty means the built-in demo knowledge base.
	Path string `mapstructure:"path"`
}

// LogConfig controls logger output.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the primelogic configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("PRIMELOGIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Optional project config in the working directory
	v.SetConfigName("primelogic")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	// A missing config file is fine; defaults and env vars apply
	_ = v.ReadInConfig()

	viperInstance = v
	return v
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("prime.initial_sieve_limit", 1000)
	v.SetDefault("kb.path", "")
	v.SetDefault("log.json", false)
}
