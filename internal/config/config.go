package config

import (
	"fmt"
	"strings"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName                string        `mapstructure:"app_name" validate:"required"`
	Env                    string        `mapstructure:"app_env"`
	LogLevel               string        `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	HTTPAddr               string        `mapstructure:"http_addr" validate:"required"`
	ItemServerURL          string        `mapstructure:"item_server_url" validate:"required,url"`
	ItemsPath              string        `mapstructure:"items_path" validate:"required,startswith=/"`
	ErrorPath              string        `mapstructure:"error_path" validate:"required,startswith=/"`
	RequestTimeoutSeconds  int64         `mapstructure:"request_timeout_seconds" validate:"gte=0"`
	ShutdownTimeoutSeconds int64         `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	RequestTimeout         time.Duration `mapstructure:"-"`
	ShutdownTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	return LoadFrom("configs/.env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an error.
func LoadFrom(envFile string) (*Config, error) {
	_ = godotenv.Load(envFile)

	v := viper.New()

	v.SetDefault("app_name", "samvad-item-client")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_addr", ":8081")
	v.SetDefault("item_server_url", "http://localhost:8080")
	v.SetDefault("items_path", "/v1/items")
	v.SetDefault("error_path", "/v1/items/runtimeException")
	v.SetDefault("request_timeout_seconds", 30)
	v.SetDefault("shutdown_timeout_seconds", 10)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.ItemServerURL = strings.TrimRight(strings.TrimSpace(cfg.ItemServerURL), "/")

	if err := validatorv10.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	cfg.ShutdownTimeout = time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second

	return &cfg, nil
}
