package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied when neither a config file nor the environment
// provides a setting.
const (
	DefaultPort       = 8080
	DefaultLogLevel   = "info"
	DefaultDataFile   = "./data/tasks.json"
	DefaultRedisURL   = "redis://localhost:6379/0"
	DefaultTTLSeconds = 60
)

// Load configuration from environment variables and optionally a config file.
// Environment variables (prefix TASKS_, dots replaced by underscores, e.g.
// TASKS_STORAGE_DATA_FILE) take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// 1. Set default values so every key resolves even with no file and a
	// bare environment.
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("storage.data_file", DefaultDataFile)
	v.SetDefault("cache.redis_url", DefaultRedisURL)
	v.SetDefault("cache.ttl_seconds", DefaultTTLSeconds)

	// 2. Configure to read from an optional config file in the working
	// directory. A missing file is fine; a malformed one is not.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 3. Configure to read from environment variables with TASKS_ prefix.
	v.SetEnvPrefix("TASKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Unmarshal config.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate config.
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
