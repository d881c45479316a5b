package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "meterbook/backend/libs/config"
	libdb "meterbook/backend/libs/db"
	libredis "meterbook/backend/libs/redis"
)

const (
	defaultPort     = "8085"
	defaultRedisTTL = time.Hour
)

// HTTPConfig configures the listener.
type HTTPConfig struct {
	Port string `yaml:"port" env:"MS_HTTP_PORT"`
}

// DatabaseConfig configures postgres.
type DatabaseConfig struct {
	DSN          string `yaml:"dsn" env:"MS_POSTGRES_DSN"`
	MaxOpenConns int    `yaml:"maxOpenConns" env:"MS_POSTGRES_MAX_OPEN_CONNS"`
	MaxIdleConns int    `yaml:"maxIdleConns" env:"MS_POSTGRES_MAX_IDLE_CONNS"`
	Migrate      bool   `yaml:"migrate" env:"MS_MIGRATE"`
}

// RedisConfig configures the reference cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"MS_REDIS_ADDR"`
	Password string        `yaml:"password" env:"MS_REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"MS_REDIS_DB"`
	TTL      time.Duration `yaml:"ttl" env:"MS_REDIS_TTL"`
}

// AuthConfig configures bearer token validation.
type AuthConfig struct {
	JWTSecret string `yaml:"jwtSecret" env:"MS_JWT_SECRET"`
	Issuer    string `yaml:"issuer" env:"MS_JWT_ISSUER"`
}

// CORSConfig lists the web origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins" env:"MS_CORS_ORIGINS"`
}

// Config represents service configuration loaded from YAML/env.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	CORS     CORSConfig     `yaml:"cors"`
}

// Load reads configuration using the shared config loader.
func Load() (*Config, error) {
	cfg := &Config{
		HTTP:     HTTPConfig{Port: defaultPort},
		Database: DatabaseConfig{Migrate: true},
		Redis:    RedisConfig{TTL: defaultRedisTTL},
	}
	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database DSN is required")
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("jwt secret is required")
	}
	if c.Redis.TTL <= 0 {
		c.Redis.TTL = defaultRedisTTL
	}
	return nil
}

// HTTPAddress ensures we always return host:port formatted string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = defaultPort
	}
	if strings.Contains(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// CacheEnabled reports whether a redis address is configured.
func (c *Config) CacheEnabled() bool {
	return strings.TrimSpace(c.Redis.Addr) != ""
}

// DBOptions converts pool settings for the shared db package.
func (c *Config) DBOptions() libdb.Options {
	return libdb.Options{MaxOpenConns: c.Database.MaxOpenConns, MaxIdleConns: c.Database.MaxIdleConns}
}

// RedisOptions converts redis settings for the shared redis package.
func (c *Config) RedisOptions() libredis.Options {
	return libredis.Options{Addr: c.Redis.Addr, Password: c.Redis.Password, DB: c.Redis.DB}
}
