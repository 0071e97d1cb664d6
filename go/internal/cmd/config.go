package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/courtside/teams/go/internal/teams"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port            string        `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		IdleTimeout     time.Duration `yaml:"idle_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
	Pagination struct {
		DefaultSize int `yaml:"default_size"`
		MaxSize     int `yaml:"max_size"`
	} `yaml:"pagination"`
	Service struct {
		Name string `yaml:"name"`
	} `yaml:"service"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func defaultConfig() *Config {
	var c Config
	c.Server.Port = "8080"
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 10 * time.Second
	c.Server.IdleTimeout = 120 * time.Second
	c.Server.ShutdownTimeout = 10 * time.Second
	c.CORS.AllowedOrigins = []string{"http://localhost:4200", "http://localhost:3000"}
	c.Pagination.DefaultSize = 20
	c.Pagination.MaxSize = 100
	c.Service.Name = "teams-service"
	c.Log.Level = "info"
	c.Log.Format = "console"
	return &c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// loadConfig layers defaults, the YAML file at path (if it exists) and
// environment overrides, in that order.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.Service.Name = getEnv("SERVICE_NAME", config.Service.Name)
	config.Log.Level = getEnv("LOG_LEVEL", config.Log.Level)
	config.Log.Format = getEnv("LOG_FORMAT", config.Log.Format)
	config.Pagination.DefaultSize = getEnvAsInt("PAGE_SIZE_DEFAULT", config.Pagination.DefaultSize)
	config.Pagination.MaxSize = getEnvAsInt("PAGE_SIZE_MAX", config.Pagination.MaxSize)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		config.CORS.AllowedOrigins = splitList(origins)
	}

	if config.Pagination.DefaultSize < 1 ||
		config.Pagination.MaxSize < config.Pagination.DefaultSize ||
		config.Pagination.MaxSize > teams.MaxPageSize {
		return nil, fmt.Errorf("invalid pagination config: default_size=%d max_size=%d (max_size must be at most %d)",
			config.Pagination.DefaultSize, config.Pagination.MaxSize, teams.MaxPageSize)
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
