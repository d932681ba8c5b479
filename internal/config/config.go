// Package config loads MIXR settings.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML
// config file, a .env file in the working directory, and MIXR_* environment
// variables. The .env file only fills variables the environment does not
// already set.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/mixr/internal/logger"
)

// Environment variable names.
const (
	EnvAPIURL   = "MIXR_API_URL"
	EnvLogLevel = "MIXR_LOG_LEVEL"
	EnvLogFile  = "MIXR_LOG_FILE"
)

const envPrefix = "MIXR"

// Config holds the settings the CLI and the default client need.
type Config struct {
	APIURL   string `mapstructure:"api_url"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		APIURL:   "http://localhost:8787/api",
		LogLevel: "normal",
		LogFile:  "stderr",
	}
}

// Level parses LogLevel.
func (c Config) Level() (logger.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}

// Load reads configuration. path names a YAML config file; when empty,
// ./mixr.yaml is used if present. Only an explicitly named file must exist.
func Load(path string) (Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mixr")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case path != "" && errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		default:
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("api_url", d.APIURL)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
}
