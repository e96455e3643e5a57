package config

import (
	"time"

	"github.com/spf13/viper"
	"github.com/unifeed/unifeed/logger"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name"`
		Port string `mapstructure:"port"`
	} `mapstructure:"app"`
	Database struct {
		Host         string `mapstructure:"host"`
		Port         string `mapstructure:"port"`
		User         string `mapstructure:"user"`
		Password     string `mapstructure:"password"`
		Name         string `mapstructure:"name"`
		Sslmode      string `mapstructure:"sslmode"`
		Timezone     string `mapstructure:"timezone"`
		MaxIdleConns int    `mapstructure:"max_idle_conns"`
		MaxOpenConns int    `mapstructure:"max_open_conns"`
	} `mapstructure:"database"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"DB"`
	} `mapstructure:"redis"`
	Log struct {
		Level      string `mapstructure:"level"`
		File       string `mapstructure:"file"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
	} `mapstructure:"log"`
	Feeds struct {
		FreshnessMinutes        int `mapstructure:"freshness_minutes"`
		FetchTimeoutSeconds     int `mapstructure:"fetch_timeout_seconds"`
		EvictionIntervalMinutes int `mapstructure:"eviction_interval_minutes"`
		RetentionMinutes        int `mapstructure:"retention_minutes"`
		DefaultMaxEntries       int `mapstructure:"default_max_entries"`
		ResponseCacheTTLSeconds int `mapstructure:"response_cache_ttl_seconds"`
	} `mapstructure:"feeds"`
	Auth struct {
		JWTSecret     string `mapstructure:"jwt_secret"`
		TokenTTLHours int    `mapstructure:"token_ttl_hours"`
	} `mapstructure:"auth"`
}

var AppConfig *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("feeds.freshness_minutes", 10)
	viper.SetDefault("feeds.fetch_timeout_seconds", 10)
	viper.SetDefault("feeds.eviction_interval_minutes", 5)
	viper.SetDefault("feeds.retention_minutes", 10)
	viper.SetDefault("feeds.default_max_entries", 5)
	viper.SetDefault("feeds.response_cache_ttl_seconds", 60)
	viper.SetDefault("auth.token_ttl_hours", 24)

	err := viper.ReadInConfig()
	if err != nil {
		logger.L.Fatalf("Failed to read config file: %v", err)
	}

	AppConfig = &Config{}
	err = viper.Unmarshal(AppConfig)
	if err != nil {
		logger.L.Fatalf("Failed to unmarshal config: %v", err)
	}

	if err := logger.Init(logger.Config{
		Level:      AppConfig.Log.Level,
		File:       AppConfig.Log.File,
		MaxSize:    AppConfig.Log.MaxSize,
		MaxBackups: AppConfig.Log.MaxBackups,
		MaxAge:     AppConfig.Log.MaxAge,
	}); err != nil {
		logger.L.Fatalf("Failed to init logger: %v", err)
	}

	initDB()
	initRedis()
}

// Freshness is the max age at which a cached document is served without refetching.
func (c *Config) Freshness() time.Duration {
	return time.Duration(c.Feeds.FreshnessMinutes) * time.Minute
}

// FetchTimeout bounds a single upstream feed request.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Feeds.FetchTimeoutSeconds) * time.Second
}

// EvictionInterval is the period of the background cache eviction job.
func (c *Config) EvictionInterval() time.Duration {
	return time.Duration(c.Feeds.EvictionIntervalMinutes) * time.Minute
}

// Retention is the max age after which eviction removes a cached document.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.Feeds.RetentionMinutes) * time.Minute
}

func (c *Config) ResponseCacheTTL() time.Duration {
	return time.Duration(c.Feeds.ResponseCacheTTLSeconds) * time.Second
}
