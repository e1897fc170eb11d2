// Package config resolves CLI settings from flags, environment, an optional
// config file and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SYLLEVAL_LABELS.
const EnvPrefix = "SYLLEVAL"

// DefaultLabelsPath is the label set read when none is given.
const DefaultLabelsPath = "data/labeled_experiment.json"

// Output formats understood by the score command.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds resolved settings.
type Config struct {
	Labels   string `mapstructure:"labels"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
}

// Options controls where settings are looked up.
type Options struct {
	ConfigFile  string   // explicit config file; empty searches SearchPaths
	SearchPaths []string // directories searched for sylleval.yaml
	EnvFile     string   // .env file loaded into the environment if present
}

// DefaultOptions searches the working directory and ./config.
func DefaultOptions() Options {
	return Options{
		SearchPaths: []string{".", "config"},
		EnvFile:     ".env",
	}
}

// Load resolves settings with precedence flag > env > config file > default.
// Only flags that were set on the command line override lower layers.
func Load(flags *pflag.FlagSet, opts Options) (Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("labels", DefaultLabelsPath)
	v.SetDefault("format", FormatText)
	v.SetDefault("log_level", "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", opts.ConfigFile, err)
		}
	} else if len(opts.SearchPaths) > 0 {
		v.SetConfigName("sylleval")
		v.SetConfigType("yaml")
		for _, p := range opts.SearchPaths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if flags != nil {
		for _, key := range []string{"labels", "format", "log-level"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(strings.ReplaceAll(key, "-", "_"), f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format != FormatText && cfg.Format != FormatYAML {
		return Config{}, fmt.Errorf("unknown format %q", cfg.Format)
	}
	return cfg, nil
}

// Level maps the configured log level onto slog.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return l
}
