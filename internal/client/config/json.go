package config

import (
	"encoding/json"
	"os"

	"github.com/ethiocareer/careercli/internal/flagx"
	"github.com/ethiocareer/careercli/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Zero-valued fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	AIChatURL      string         `json:"ai_chat_url"`
	DataDir        string         `json:"data_dir"`
	StorageBackend string         `json:"storage_backend"`
	RedisAddr      string         `json:"redis_addr"`
	PollInterval   timex.Duration `json:"poll_interval"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	ChatTimeout    timex.Duration `json:"chat_timeout"`
	RateLimit      float64        `json:"rate_limit"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. Read and
// decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.AIChatURL, jc.AIChatURL)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.LogLevel, jc.LogLevel)

	if jc.PollInterval.Duration > 0 {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ChatTimeout.Duration > 0 {
		cfg.ChatTimeout = jc.ChatTimeout.Duration
	}
	if jc.RateLimit > 0 {
		cfg.RateLimit = jc.RateLimit
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
