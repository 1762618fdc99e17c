package config

import (
	"fmt"
	"os"
)

type Config struct {
	Host         string
	Port         string
	DatabaseURL  string
	DatabaseName string
	Environment  string
	LogLevel     string
}

func LoadConfig() *Config {
	return &Config{
		Host:         getEnvWithDefault("HOST", "127.0.0.1"),
		Port:         getEnvWithDefault("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnvWithDefault("DATABASE_NAME", "evently"),
		Environment:  getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
	}
}

// Validate checks required fields after any CLI overrides are applied.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}
