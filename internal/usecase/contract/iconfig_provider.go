package usecasecontract

import "time"

// IConfigProvider exposes application configuration values.
type IConfigProvider interface {
	GetPort() string
	// GetDurableBackend selects the key-value substrate: sqlite, redis,
	// mongo or memory.
	GetDurableBackend() string
	GetSQLitePath() string
	GetRedisURL() string
	GetMongoURI() string
	GetMongoDBName() string
	// GetLoginLatency is the artificial delay applied to login and register.
	GetLoginLatency() time.Duration
}
