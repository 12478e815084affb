package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/clinicflow/ledger-api/internal/store"
)

type Config struct {
	Server   ServerConfig         `mapstructure:"server"`
	Storage  StorageConfig        `mapstructure:"storage"`
	Database store.PostgresConfig `mapstructure:"database"`
	Session  SessionConfig        `mapstructure:"session"`
	Sync     SyncConfig           `mapstructure:"sync"`
	Log      LogConfig            `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int     `mapstructure:"port"`
	TimeoutSeconds int     `mapstructure:"timeoutSeconds"`
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateBurst      int     `mapstructure:"rate_burst"`
}

// StorageConfig selects the KV backend: file, memory or postgres.
type StorageConfig struct {
	Backend  string `mapstructure:"backend"`
	DataDir  string `mapstructure:"data_dir"`
	SeedDemo bool   `mapstructure:"seed_demo"`
}

type SessionConfig struct {
	TimeoutMinutes int `mapstructure:"timeout_minutes"`
}

type SyncConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	RedisURL string `mapstructure:"redis_url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("server.rate_limit_rps", 100)
	viper.SetDefault("server.rate_burst", 200)
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("session.timeout_minutes", 30)
	viper.SetDefault("log.level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
