package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Cache   CacheConfig   `mapstructure:"cache" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig contains settings for the file-backed task store.
type StorageConfig struct {
	// DataFile is the path of the JSON file holding the task list.
	// The parent directory is created on startup if missing.
	DataFile string `mapstructure:"data_file" validate:"required"`
}

// CacheConfig contains settings for the optional Redis cache.
type CacheConfig struct {
	// RedisURL is the connection string of the cache backend. The service
	// runs fully functional without it; an unreachable backend only
	// disables the cache.
	RedisURL string `mapstructure:"redis_url" validate:"required,uri"`

	// TTLSeconds is the expiry applied to the cached task list.
	TTLSeconds int `mapstructure:"ttl_seconds" validate:"required,gt=0"`
}
