package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// DataDir is the directory table schemas and snapshots are stored in.
	DataDir string `mapstructure:"data_dir"`
	// LogLevel is a zap level name ("debug", "info", ...).
	LogLevel string `mapstructure:"log_level"`
	// Storage selects the storage backend, "file" or "memory".
	Storage string `mapstructure:"storage"`
}

// Load reads configuration from an optional YAML file with MINIDB_* env
// variable overrides and built-in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", "data")
	v.SetDefault("log_level", "info")
	v.SetDefault("storage", "file")
	v.SetEnvPrefix("MINIDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
