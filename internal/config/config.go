// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Redis (session store)
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Image storage backend: "s3", "cloudinary", or "" (uploads disabled).
	StorageProvider string

	// S3-compatible storage
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// Cloudinary (CLOUDINARY_URL as issued by the Cloudinary console)
	CloudinaryURL string

	// Dashboard accounts. Two fixed credential pairs gate the dashboard;
	// this is a route guard, not a security boundary.
	AdminUser     string
	AdminPassword string
	ShopUser      string
	ShopPassword  string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "meibeichi"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "meibeichi"),

		RedisHost:     envOrDefault("REDIS_HOST", "localhost"),
		RedisPort:     envOrDefault("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		StorageProvider: os.Getenv("STORAGE_PROVIDER"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "auto"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "meibeichi-media"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),

		AdminUser:     envOrDefault("ADMIN_USER", "admin"),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", "admin"),
		ShopUser:      envOrDefault("SHOP_USER", "meibeichi"),
		ShopPassword:  envOrDefault("SHOP_PASSWORD", "meibeichi"),
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if cfg.AdminPassword == "admin" || cfg.ShopPassword == "meibeichi" {
			return nil, fmt.Errorf("ADMIN_PASSWORD and SHOP_PASSWORD must be set in production")
		}
	}

	switch cfg.StorageProvider {
	case "", "s3", "cloudinary":
	default:
		return nil, fmt.Errorf("unknown STORAGE_PROVIDER %q (want s3 or cloudinary)", cfg.StorageProvider)
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// RedisAddr returns the Redis connection address (host:port).
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
