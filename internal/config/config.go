package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	Env         string   `mapstructure:"env"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LogConfig selects the log level and output format
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig selects where tasks are stored
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// SupabaseConfig holds Supabase-specific configuration
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// CacheConfig enables the Redis task cache when Addr is set
type CacheConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether a Redis address was configured
func (c CacheConfig) Enabled() bool {
	return c.Addr != ""
}

// AuthConfig toggles bearer token verification against Supabase
type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// RateLimitConfig bounds requests per client; zero Requests disables it
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// Load reads configuration from a .env file, environment variables and an
// optional config.yaml, in increasing order of precedence for env vars.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.dsn", "file:moodtracker.db?_foreign_keys=on")
	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.service_key", "")
	v.SetDefault("cache.addr", "")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("ratelimit.requests", 300)
	v.SetDefault("ratelimit.window", time.Minute)

	v.SetEnvPrefix("MOODTRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Non-prefixed names used by hosting platforms
	_ = v.BindEnv("server.port", "MOODTRACKER_SERVER_PORT", "PORT")
	_ = v.BindEnv("storage.dsn", "MOODTRACKER_STORAGE_DSN", "DATABASE_URL")
	_ = v.BindEnv("supabase.url", "MOODTRACKER_SUPABASE_URL", "SUPABASE_URL")
	_ = v.BindEnv("supabase.service_key", "MOODTRACKER_SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_KEY")
	_ = v.BindEnv("cache.addr", "MOODTRACKER_CACHE_ADDR", "REDIS_ADDR")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that the selected storage driver and features have what they need
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSupabase:
		if err := c.requireSupabase(); err != nil {
			return err
		}
	case DriverPostgres, DriverSQLite:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the %s driver", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Auth.Enabled {
		if err := c.requireSupabase(); err != nil {
			return fmt.Errorf("auth.enabled: %w", err)
		}
	}

	if c.RateLimit.Requests > 0 && c.RateLimit.Window <= 0 {
		return errors.New("ratelimit.window must be positive when ratelimit.requests is set")
	}

	return nil
}

func (c *Config) requireSupabase() error {
	if c.Supabase.URL == "" {
		return errors.New("SUPABASE_URL is required")
	}
	if c.Supabase.ServiceKey == "" {
		return errors.New("SUPABASE_SERVICE_KEY is required")
	}
	return nil
}
