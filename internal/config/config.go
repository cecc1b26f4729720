package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env           string    `mapstructure:"env"`            // current application environment (local, dev, production)
	ServerAddress string    `mapstructure:"server_address"` // listen address for the HTTP server
	DatabaseURL   string    `mapstructure:"-"`              // Postgres connection string loaded from environment
	Redis         Redis     `mapstructure:"redis"`          // redis configuration section
	Upstreams     Upstreams `mapstructure:"upstreams"`      // third-party API base URLs
	Prayer        Prayer    `mapstructure:"prayer"`         // prayer time calculation settings
	Cache         Cache     `mapstructure:"cache"`          // cache TTL settings
}

// Redis contains connection parameters for the cache/pubsub backend.
type Redis struct {
	Address  string `mapstructure:"address"`
	Username string `mapstructure:"-"` // loaded from environment
	Password string `mapstructure:"-"` // loaded from environment
}

// Upstreams holds the base URLs of the three external services. Overridable
// so tests and self-hosted mirrors can point elsewhere.
type Upstreams struct {
	QuranBaseURL     string `mapstructure:"quran_base_url"`
	AladhanBaseURL   string `mapstructure:"aladhan_base_url"`
	NominatimBaseURL string `mapstructure:"nominatim_base_url"`
}

// Prayer holds the timing calculation parameters.
type Prayer struct {
	// Method is the aladhan calculation method identifier. 20 is the
	// Indonesian Ministry of Religious Affairs (KEMENAG) method.
	Method int `mapstructure:"method"`
}

// Cache contains TTLs for the Redis-backed response caches.
type Cache struct {
	SurahListTTL   time.Duration `mapstructure:"surah_list_ttl"`
	SurahDetailTTL time.Duration `mapstructure:"surah_detail_ttl"`
	TimingsTTL     time.Duration `mapstructure:"timings_ttl"`
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("server_address", ":8080")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("upstreams.quran_base_url", "https://equran.id/api/v2")
	v.SetDefault("upstreams.aladhan_base_url", "https://api.aladhan.com/v1")
	v.SetDefault("upstreams.nominatim_base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("prayer.method", 20)
	v.SetDefault("cache.surah_list_ttl", "24h")
	v.SetDefault("cache.surah_detail_ttl", "24h")
	v.SetDefault("cache.timings_ttl", "24h")

	// Map nested keys to ENV style names, e.g. redis.address -> REDIS_ADDRESS.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_username", "REDIS_USERNAME")
	_ = v.BindEnv("redis_password", "REDIS_PASSWORD")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("server_address", "SERVER_ADDRESS")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Sensitive values come from the environment only.
	cfg.DatabaseURL = v.GetString("database_url")
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingEnvironmentVariables
	}
	cfg.Redis.Username = v.GetString("redis_username")
	cfg.Redis.Password = v.GetString("redis_password")

	return &cfg, nil
}
