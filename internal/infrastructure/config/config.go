package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port           string
	DurableBackend string
	SQLitePath     string
	RedisURL       string
	MongoURI       string
	MongoDBName    string
	LoginLatency   time.Duration
}

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		DurableBackend: getEnv("DURABLE_BACKEND", "sqlite"),
		SQLitePath:     getEnv("SQLITE_PATH", "cleanwave.db"),
		RedisURL:       getEnv("REDIS_URL", ""),
		MongoURI:       getEnv("MONGODB_URI", ""),
		MongoDBName:    getEnv("MONGODB_DB_NAME", "cleanwave"),
		LoginLatency:   time.Millisecond * time.Duration(getEnvAsInt("LOGIN_LATENCY_MS", 1000)),
	}
}

// GetPort returns the HTTP listen port.
func (c *Config) GetPort() string {
	return c.Port
}

// GetDurableBackend returns the selected key-value substrate.
func (c *Config) GetDurableBackend() string {
	return c.DurableBackend
}

// GetSQLitePath returns the SQLite database file path.
func (c *Config) GetSQLitePath() string {
	return c.SQLitePath
}

// GetRedisURL returns the redis connection URL.
func (c *Config) GetRedisURL() string {
	return c.RedisURL
}

// GetMongoURI returns the MongoDB connection URI.
func (c *Config) GetMongoURI() string {
	return c.MongoURI
}

// GetMongoDBName returns the MongoDB database name.
func (c *Config) GetMongoDBName() string {
	return c.MongoDBName
}

// GetLoginLatency returns the artificial delay applied to login and register.
func (c *Config) GetLoginLatency() time.Duration {
	return c.LoginLatency
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
