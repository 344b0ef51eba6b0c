package config

import "time"

// Storage backends for the durable key-value area.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds runtime settings for the careercli client.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the marketplace REST API.
//   - AIChatURL: full URL of the text-generation endpoint used by chat escalation.
//   - DataDir: directory holding the local database and the log file.
//   - StorageBackend: "sqlite" (local file) or "redis" (shared).
//   - RedisAddr: host:port of Redis when StorageBackend is "redis".
//   - PollInterval: how often notification sources are refreshed.
//   - RequestTimeout: per-request timeout for API calls.
//   - ChatTimeout: upper bound on one AI escalation call.
//   - RateLimit: outbound requests per second shared by all API calls.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	AIChatURL      string
	DataDir        string
	StorageBackend string
	RedisAddr      string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	ChatTimeout    time.Duration
	RateLimit      float64
	LogLevel       string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.AIChatURL = "http://localhost:8000/api/ai-chat"
	c.DataDir = ".careercli"
	c.StorageBackend = StorageSQLite
	c.RedisAddr = "127.0.0.1:6379"
	c.PollInterval = 15 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.ChatTimeout = 30 * time.Second
	c.RateLimit = 10
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the environment (including
// an optional .env file), then an optional JSON file, then flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
