package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. MEASURE_LOG_LEVEL.
const EnvPrefix = "MEASURE"

// Default values applied before any other source.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultPrecision = 4
)

// Load reads configuration from defaults, an optional measure.yaml file and
// MEASURE_ environment variables. Environment variables take precedence over
// the file. Returns a populated Config or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith is like Load but uses the supplied viper instance, so callers can
// bind command line flags to it first. Bound flags win over everything else.
func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("display.precision", DefaultPrecision)

	v.SetConfigName("measure")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/measure")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
