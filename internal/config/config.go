package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read via Viper from
// environment variables (STOCKROOM_* prefix) layered over an optional .env
// file in the working directory.
type Config struct {
	Env      string // development, production
	Addr     string // listen address, host:port
	DataFile string // path of the JSON blob holding the item collection

	JWTSecret     string
	AdminUser     string
	AdminPassword string

	LogLevel string

	RateLimitRPS   float64 // requests per second per client
	RateLimitBurst int
}

// Load reads the configuration. Environment variables take priority over the
// .env file; missing keys fall back to development defaults, except the JWT
// secret which is mandatory outside development.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // the file is optional

	v.SetEnvPrefix("STOCKROOM")
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("ADDR", ":8080")
	v.SetDefault("DATA_FILE", "./data/items.json")
	v.SetDefault("ADMIN_USER", "admin")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	cfg := &Config{
		Env:            v.GetString("ENV"),
		Addr:           v.GetString("ADDR"),
		DataFile:       v.GetString("DATA_FILE"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		AdminUser:      v.GetString("ADMIN_USER"),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Env != "development" {
		if c.JWTSecret == "" {
			return fmt.Errorf("STOCKROOM_JWT_SECRET is required outside development")
		}
		if c.AdminPassword == "" {
			return fmt.Errorf("STOCKROOM_ADMIN_PASSWORD is required outside development")
		}
	}
	if c.JWTSecret == "" {
		c.JWTSecret = "dev-only-secret"
	}
	if c.AdminPassword == "" {
		c.AdminPassword = "admin"
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit values must be positive")
	}
	return nil
}
