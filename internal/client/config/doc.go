// Package config loads runtime configuration for the careercli client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed CAREER_, after loading an optional
//     dotenv file (./.env, or the path given by -env).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-u string   API base URL
//	-ai string  AI chat endpoint URL
//	-d string   data directory
//	-s string   storage backend (sqlite|redis)
//	-r string   Redis address
//	-p int      notification poll interval (seconds)
//	-t int      API request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Intervals use timex.Duration, so "15s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "https://api.ethiocareer.et",
//	  "ai_chat_url": "https://ai.ethiocareer.et/api/ai-chat",
//	  "data_dir": "/var/lib/careercli",
//	  "storage_backend": "sqlite",
//	  "poll_interval": "15s",
//	  "request_timeout": "10s",
//	  "chat_timeout": "30s",
//	  "rate_limit": 10,
//	  "log_level": "info"
//	}
package config
